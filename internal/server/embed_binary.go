package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"io"
	"net/http"
	"stegobmp/api/stegobmp/Embed"
	"stegobmp/internal/logging"
	"stegobmp/pkg/config"
	"stegobmp/pkg/model"
)

const octetStream = "application/octet-stream"

// EmbedBinaryHandler godoc
//
// @Summary Hide a file in a BMP carrier, flatbuffers encoded
// @Description Same as /embed with an Embed.EmbedRequest flatbuffer as body and an Embed.EmbedResponse flatbuffer as response. Errors are returned as JSON
// @Tags stego
// @Accept octet-stream
// @Produce octet-stream
// @Success 200 {string} binary "Embed.EmbedResponse flatbuffer"
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/binary [post]
func EmbedBinaryHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing binary embed request")

	requestBody, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(requestBody) < flatbuffers.SizeUOffsetT {
		logger.Info("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	request, err := readEmbedRequest(requestBody)
	if err != nil {
		logger.WithError(err).Info("Error decoding flatbuffer")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	cfg := stegoConfig(ctx, config.StegoConfig{
		Method:         string(request.Method()),
		LSBIConvention: string(request.LsbiConvention()),
		Encryption: config.EncryptionConfig{
			Method:   string(request.Cipher()),
			Mode:     string(request.Mode()),
			Password: string(request.Password()),
			KDF:      string(request.Kdf()),
		},
	})
	file := model.InputFile{
		Name:    string(request.FileName()),
		Content: bytes.NewReader(request.FileContentBytes()),
		Size:    int64(request.FileContentLength()),
	}
	carrier, stats, err := embed(request.CarrierBytes(), file, cfg)
	if err != nil {
		abortWithError(ctx, logger, "Error embedding file", err)
		return
	}
	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Embedding was successful")

	builder := flatbuffers.NewBuilder(len(carrier) + 64)
	carrierOffset := builder.CreateByteVector(carrier)
	Embed.EmbedResponseStart(builder)
	Embed.EmbedResponseAddCarrier(builder, carrierOffset)
	Embed.EmbedResponseAddStreamSize(builder, uint32(stats.StreamSize))
	Embed.EmbedResponseAddCapacity(builder, uint32(stats.Capacity))
	builder.Finish(Embed.EmbedResponseEnd(builder))

	ctx.Data(http.StatusOK, octetStream, builder.FinishedBytes())
}

// readEmbedRequest turns the panics flatbuffers raises on out of range offsets into errors
func readEmbedRequest(buf []byte) (request *Embed.EmbedRequest, err error) {
	defer func() {
		if r := recover(); r != nil {
			request, err = nil, errMalformedFlatbuffer
		}
	}()
	request = Embed.GetRootAsEmbedRequest(buf, 0)
	// reading every field makes a malformed buffer fail here rather than in the handler
	request.CarrierBytes()
	request.FileContentBytes()
	request.FileName()
	request.Method()
	request.LsbiConvention()
	request.Cipher()
	request.Mode()
	request.Password()
	request.Kdf()
	return request, nil
}
