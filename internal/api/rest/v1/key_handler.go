package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type keyHandler struct {
	keyGenerationService keys.KeyGenerationService
	keyDownloadService   keys.KeyDownloadService
	keyMetadataService   keys.KeyMetadataService
	keyCipherService     keys.KeyCipherService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(
	keyGenerationService keys.KeyGenerationService,
	keyDownloadService keys.KeyDownloadService,
	keyMetadataService keys.KeyMetadataService,
	keyCipherService keys.KeyCipherService,
) KeyHandler {
	return &keyHandler{
		keyGenerationService: keyGenerationService,
		keyDownloadService:   keyDownloadService,
		keyMetadataService:   keyMetadataService,
		keyCipherService:     keyCipherService,
	}
}

// GenerateKeys handles the POST request to generate and store a textbook RSA key pair
// @Summary Generate a textbook RSA key pair
// @Description Generate a key pair and store both halves. Omitted parameters fall back to the server defaults.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest false "Key generation parameters"
// @Success 201 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
			return
		}
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	userID := uuid.New().String() // TODO(MGTheTrain): extract user id from JWT

	keyMetas, err := handler.keyGenerationService.Generate(ctx, userID, request.KeySize, request.Exponent)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating keys: %v", err)})
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(keyMetas))
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, newKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// @Summary List key metadata based on query parameters
// @Tags Key
// @Produce json
// @Param type query string false "Key Type"
// @Param keyPairId query string false "Key Pair ID"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyQuery()

	query.Algorithm = ctx.Query("algorithm")
	query.Type = ctx.Query("type")
	query.KeyPairID = ctx.Query("keyPairId")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
			return
		}
		*target = value
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyMetas, err := handler.keyMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := make([]KeyMetaResponse, 0, len(keyMetas))
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, newKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key metadata by ID
// @Summary Retrieve key metadata by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not get key with id %s: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, newKeyMetaResponse(keyMeta))
}

// DownloadByID handles GET request to download a public key by ID
// @Summary Download a public key by ID
// @Description Download a public key as a TEXTBOOK RSA PUBLIC KEY PEM file. Private keys cannot be downloaded.
// @Tags Key
// @Produce application/x-pem-file
// @Param id path string true "Key ID"
// @Success 200 {file} file "Public key in PEM format"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	pemBytes, err := handler.keyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("could not download key with id %s: %v", keyID, err)})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-public-key.pem", keyID))
	ctx.Data(http.StatusOK, "application/x-pem-file", pemBytes)
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyMetadataService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s: %v", keyID, err)})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Encrypt handles the POST request to encrypt a message with a stored public key
// @Summary Encrypt a message
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Public Key ID"
// @Param requestBody body EncryptRequest true "Plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *keyHandler) Encrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	ciphertext, err := handler.keyCipherService.Encrypt(ctx, keyID, request.Plaintext)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt a ciphertext with a stored private key
// @Summary Decrypt a ciphertext
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Private Key ID"
// @Param requestBody body DecryptRequest true "Hexadecimal ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *keyHandler) Decrypt(ctx *gin.Context) {
	keyID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	plaintext, err := handler.keyCipherService.Decrypt(ctx, keyID, request.Ciphertext)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}
