package api

import "stegobmp/pkg/config"

type CapacityRequest struct {
	Carrier    []byte                  `json:"carrier" binding:"required"`
	Extension  string                  `json:"extension,omitempty" example:".txt"`
	Encryption config.EncryptionConfig `json:"encryption"`
}

type MethodCapacity struct {
	Method      string `json:"method"`
	MaxFileSize int    `json:"max_file_size"`
}

type CapacityResponse struct {
	CarrierBytes int              `json:"carrier_bytes"`
	Methods      []MethodCapacity `json:"methods"`
}
