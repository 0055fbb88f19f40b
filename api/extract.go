package api

import (
	"stegobmp/pkg/config"
	"stegobmp/pkg/model"
)

type ExtractRequest struct {
	Carrier        []byte                  `json:"carrier" binding:"required"`
	Method         string                  `json:"method,omitempty" example:"LSB4"`
	LSBIConvention string                  `json:"lsbi_convention,omitempty"`
	Encryption     config.EncryptionConfig `json:"encryption"`
	// OutputName is the base name the recovered extension is appended to
	OutputName string `json:"output_name,omitempty" example:"secret"`
}

type ExtractResponse struct {
	File         model.OutputFile  `json:"file"`
	DeclaredSize uint32            `json:"declared_size"`
	Stats        model.DecodeStats `json:"stats"`
}
