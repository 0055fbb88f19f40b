package server

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"stegobmp/api"
	"stegobmp/internal/logging"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/config"
	"stegobmp/pkg/stego"
)

const defaultOutputName = "out"

// ExtractHandler godoc
//
// @Summary Recover a file hidden in a BMP carrier
// @Description Retrieves the payload with the requested method, decrypting it when a password is supplied. The file is named output_name plus the recovered extension
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractRequest true "Carrier and extraction options"
// @Success 200 {object} api.ExtractResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract [post]
func ExtractHandler(ctx *gin.Context) {
	var requestBody api.ExtractRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, err := bmp.Parse(requestBody.Carrier)
	if err != nil {
		abortWithError(ctx, logger, "Error reading carrier", err)
		return
	}
	decoder, err := stego.NewDecoder(img, stegoConfig(ctx, config.StegoConfig{
		Method:         requestBody.Method,
		LSBIConvention: requestBody.LSBIConvention,
		Encryption:     requestBody.Encryption,
	}))
	if err != nil {
		abortWithError(ctx, logger, "Error setting up decoder", err)
		return
	}

	outputName := requestBody.OutputName
	if outputName == "" {
		outputName = defaultOutputName
	}
	file, err := decoder.DecodeFile(outputName)
	if err != nil {
		abortWithError(ctx, logger, "Error extracting file", err)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(decoder.Stats())).Info("Extraction was successful")
	ctx.JSON(http.StatusOK, api.ExtractResponse{
		File:         *file,
		DeclaredSize: uint32(len(file.Content)),
		Stats:        decoder.Stats(),
	})
}
