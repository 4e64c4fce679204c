package v1

import (
	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	keyDownloadService keys.KeyDownloadService,
	keyMetadataService keys.KeyMetadataService,
	keyCipherService keys.KeyCipherService,
	rsaProcessor cryptoalg.RSAProcessor) {

	v1 := r.Group(BasePath)

	// Keys Routes
	keyHandler := NewKeyHandler(keyGenerationService, keyDownloadService, keyMetadataService, keyCipherService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
	v1.POST("/keys/:id/encrypt", keyHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", keyHandler.Decrypt)

	// Primes Routes
	primeHandler := NewPrimeHandler(rsaProcessor)
	v1.GET("/primes", primeHandler.GeneratePrime)
	v1.GET("/primes/:candidate", primeHandler.IsPrime)
}
