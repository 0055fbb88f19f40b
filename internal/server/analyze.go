package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"stegobmp/api"
	"stegobmp/internal/logging"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/config"
	"stegobmp/pkg/stego"
)

// AnalyzeHandler godoc
//
// @Summary Find out whether and how a BMP carrier hides a payload
// @Description Tries LSB1, LSB4 and LSBI in turn. The first one yielding a well formed payload or encrypted envelope wins. When none does, 404 is returned with the best guess in the report. Encrypted payloads are decrypted when a password is supplied
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.AnalyzeRequest true "Carrier and optional decryption options"
// @Success 200 {object} api.AnalyzeResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.AnalyzeResponse
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /analyze [post]
func AnalyzeHandler(ctx *gin.Context) {
	var requestBody api.AnalyzeRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing analyze request")

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
	params, err := stegoConfig(ctx, config.StegoConfig{Encryption: requestBody.Encryption}).Params()
	if err != nil {
		abortWithError(ctx, logger, "Error reading encryption options", err)
		return
	}

	result, stats, err := stego.Analyze(img)
	logger = &logging.Logger{Logger: logger.With("stats", toHumanizedAnalyzeStats(stats))}
	response := api.AnalyzeResponse{Result: result, Stats: stats}
	if errors.Is(err, analysis.ErrNoPayloadDetected) {
		logger.Info("No payload detected")
		ctx.JSON(http.StatusNotFound, response)
		return
	}

	outputName := requestBody.OutputName
	if outputName == "" {
		outputName = defaultOutputName
	}
	response.File, err = stego.RecoverFile(result, outputName, params)
	if err != nil && !errors.Is(err, analysis.ErrEncrypted) {
		abortWithError(ctx, logger, "Error recovering detected payload", err)
		return
	}

	logger.Info("Analysis found a payload", "method", result.Method, "format", result.Format)
	ctx.JSON(http.StatusOK, response)
}
