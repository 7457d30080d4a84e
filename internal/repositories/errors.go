package repositories

import "fmt"

// NotFoundError reports a missing city directory or CSV file.
type NotFoundError struct {
	Path  string
	IsDir bool
}

func (e *NotFoundError) Error() string {
	if e.IsDir {
		return fmt.Sprintf("도시 폴더가 없습니다: %s", e.Path)
	}
	return fmt.Sprintf("CSV 파일이 없습니다: %s", e.Path)
}

// ParseError reports a CSV that could not be decoded or has a malformed row.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("CSV 파싱 실패 (%s, %d행): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("CSV 파싱 실패 (%s): %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
