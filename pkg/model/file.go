package model

import "io"

// InputFile is a file to hide. Name is only used for its extension
type InputFile struct {
	Name    string
	Content io.Reader
	Size    int64
}

// OutputFile is a recovered file, Name being the requested base name with the recovered extension appended
type OutputFile struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Content   []byte `json:"content"`
}
