package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"stegobmp/api"
	"stegobmp/internal/logging"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/payload"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInternal          = api.Error{Code: "internal_error", Error: "An unexpected error occurred"}
)

type errorMapping struct {
	errs   []error
	status int
	code   string
}

// first match wins
var errorMappings = []errorMapping{
	{[]error{bmp.ErrNotBMP, bmp.ErrUnsupportedFormat, bmp.ErrInvalidDimensions, bmp.ErrTruncated},
		http.StatusBadRequest, "invalid_carrier"},
	{[]error{codec.ErrUnknownMethod, codec.ErrUnknownConvention, crypt.ErrUnsupportedCipher, crypt.ErrUnsupportedKDF,
		crypt.ErrEmptyPassword, payload.ErrMissingExtension, payload.ErrInvalidExtension, payload.ErrEmptyFile,
		payload.ErrFileTooLarge}, http.StatusBadRequest, "invalid_request"},
	{[]error{codec.ErrInsufficientCapacity}, http.StatusUnprocessableEntity, "insufficient_capacity"},
	{[]error{envelope.ErrDecryptionFailed, envelope.ErrInconsistentLength, envelope.ErrTruncatedEnvelope,
		analysis.ErrEncrypted}, http.StatusUnprocessableEntity, "decryption_error"},
	{[]error{analysis.ErrNoPayloadDetected, payload.ErrMalformedPayload, codec.ErrNoTerminatorFound},
		http.StatusNotFound, "no_payload"},
}

func toAPIError(err error) (int, api.Error) {
	for _, m := range errorMappings {
		for _, target := range m.errs {
			if errors.Is(err, target) {
				return m.status, api.Error{Code: m.code, Error: err.Error()}
			}
		}
	}
	return http.StatusInternalServerError, errInternal
}

func abortWithError(ctx *gin.Context, logger *logging.Logger, msg string, err error) {
	status, apiErr := toAPIError(err)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Info(msg)
	}
	ctx.AbortWithStatusJSON(status, apiErr)
}

var errMalformedFlatbuffer = errors.New("malformed flatbuffer")
