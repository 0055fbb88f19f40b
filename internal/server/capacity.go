package server

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"stegobmp/api"
	"stegobmp/internal/logging"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/config"
	"stegobmp/pkg/stego"
)

const defaultCapacityExtension = ".txt"

// CapacityHandler godoc
//
// @Summary Report how large a file each method can hide in a BMP carrier
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Carrier, extension of the file to hide and encryption options"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity [post]
func CapacityHandler(ctx *gin.Context) {
	var requestBody api.CapacityRequest

	logger := logging.BuildLoggerFromCtx(ctx)

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

	ext := requestBody.Extension
	if ext == "" {
		ext = defaultCapacityExtension
	}
	response := api.CapacityResponse{CarrierBytes: img.Capacity()}
	for _, c := range append(codec.All(), codec.NewLSBI(codec.ConventionLegacy)) {
		name := string(c.Method())
		if lsbi, ok := c.(*codec.LSBICodec); ok {
			name += "-" + lsbi.Convention().String()
		}
		response.Methods = append(response.Methods, api.MethodCapacity{
			Method:      name,
			MaxFileSize: stego.MaxFileSize(c, img.Capacity(), len(ext), params),
		})
	}
	ctx.JSON(http.StatusOK, response)
}
