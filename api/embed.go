package api

import (
	"stegobmp/pkg/config"
	"stegobmp/pkg/model"
)

// EmbedRequest hides FileContent in Carrier, a 24-bit BMP. Unset options fall back to the server defaults
type EmbedRequest struct {
	Carrier        []byte                  `json:"carrier" binding:"required"`
	FileName       string                  `json:"file_name" binding:"required"`
	FileContent    []byte                  `json:"file_content" binding:"required"`
	Method         string                  `json:"method,omitempty" example:"LSBI"`
	LSBIConvention string                  `json:"lsbi_convention,omitempty" example:"adaptive"`
	Encryption     config.EncryptionConfig `json:"encryption"`
}

type EmbedResponse struct {
	Carrier []byte            `json:"carrier"`
	Stats   model.EncodeStats `json:"stats"`
}
