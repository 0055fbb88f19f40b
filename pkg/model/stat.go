package model

import (
	"time"
)

type EncodeStats struct {
	Setup               time.Duration `json:"setup"`
	Encryption          time.Duration `json:"encryption"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	StreamSize          int           `json:"stream_size"`
	Capacity            int           `json:"capacity"`
}

type DecodeStats struct {
	DataDecoding time.Duration `json:"data_decoding"`
	Decryption   time.Duration `json:"decryption"`
	StreamSize   int           `json:"stream_size"`
}

type AnalyzeStats struct {
	Analysis time.Duration `json:"analysis"`
	Attempts int           `json:"attempts"`
}
