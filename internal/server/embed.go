package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"net/http"
	"stegobmp/api"
	"stegobmp/internal/logging"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/config"
	"stegobmp/pkg/model"
	"stegobmp/pkg/stego"
)

// EmbedHandler godoc
//
// @Summary Hide a file in a BMP carrier
// @Description Frames the file with its extension, encrypts it when a password is supplied and hides it with the requested method. Returns the modified carrier
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedRequest true "Carrier, file to hide and embedding options"
// @Success 200 {object} api.EmbedResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed [post]
func EmbedHandler(ctx *gin.Context) {
	var requestBody api.EmbedRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing embed request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	cfg := stegoConfig(ctx, config.StegoConfig{
		Method:         requestBody.Method,
		LSBIConvention: requestBody.LSBIConvention,
		Encryption:     requestBody.Encryption,
	})
	file := model.InputFile{
		Name:    requestBody.FileName,
		Content: bytes.NewReader(requestBody.FileContent),
		Size:    int64(len(requestBody.FileContent)),
	}
	carrier, stats, err := embed(requestBody.Carrier, file, cfg)
	if err != nil {
		abortWithError(ctx, logger, "Error embedding file", err)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Embedding was successful")
	ctx.JSON(http.StatusOK, api.EmbedResponse{Carrier: carrier, Stats: stats})
}

// embed hides file in the BMP held by carrier and returns the resulting BMP
func embed(carrier []byte, file model.InputFile, cfg config.StegoConfig) ([]byte, model.EncodeStats, error) {
	img, err := bmp.Parse(carrier)
	if err != nil {
		return nil, model.EncodeStats{}, err
	}
	encoder, err := stego.NewEncoder(img, cfg)
	if err != nil {
		return nil, model.EncodeStats{}, err
	}
	if err = encoder.EncodeFile(file); err != nil {
		return nil, encoder.Stats(), err
	}

	// the output is the same size as the input
	encoded := bytes.NewBuffer(make([]byte, 0, len(carrier)))
	if err = encoder.WriteBMP(encoded); err != nil {
		return nil, encoder.Stats(), err
	}
	return encoded.Bytes(), encoder.Stats(), nil
}
