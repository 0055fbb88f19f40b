package api

import (
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/config"
	"stegobmp/pkg/model"
)

// AnalyzeRequest looks for a payload without knowing how it was hidden. Encryption is only needed to decrypt an
// encrypted payload once found
type AnalyzeRequest struct {
	Carrier    []byte                  `json:"carrier" binding:"required"`
	Encryption config.EncryptionConfig `json:"encryption"`
	OutputName string                  `json:"output_name,omitempty"`
}

type AnalyzeResponse struct {
	Result *analysis.Result `json:"result"`
	// File is set when the payload is plain, or encrypted and decrypted with the supplied encryption options
	File  *model.OutputFile  `json:"file,omitempty"`
	Stats model.AnalyzeStats `json:"stats"`
}
