package stego

import (
	"errors"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/model"
	"time"
)

// Analyze runs blind analysis over the pixels of img. The result is returned even when no payload is detected
func Analyze(img *bmp.Image) (*analysis.Result, model.AnalyzeStats, error) {
	start := time.Now()
	result, err := analysis.Analyze(img.Pixels)
	stats := model.AnalyzeStats{Analysis: time.Since(start), Attempts: len(result.Attempts)}
	return result, stats, err
}

// RecoverFile turns a detected payload into a file named base plus its extension. Encrypted payloads need params;
// without them analysis.ErrEncrypted is returned
func RecoverFile(result *analysis.Result, base string, params crypt.Params) (*model.OutputFile, error) {
	p, err := result.Payload()
	if errors.Is(err, analysis.ErrEncrypted) && params.Enabled() {
		p, err = result.Decrypt(params)
	}
	if err != nil {
		return nil, err
	}
	return toOutputFile(base, p), nil
}
