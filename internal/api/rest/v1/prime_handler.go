package v1

import (
	"fmt"
	"math/big"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// Longest decimal candidate the primality endpoint accepts.
const maxCandidateDigits = 2500

// PrimeHandler exposes the prime generator and the primality oracle.
type PrimeHandler interface {
	GeneratePrime(ctx *gin.Context)
	IsPrime(ctx *gin.Context)
}

type primeHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
}

// NewPrimeHandler creates a new PrimeHandler
func NewPrimeHandler(rsaProcessor cryptoalg.RSAProcessor) PrimeHandler {
	return &primeHandler{rsaProcessor: rsaProcessor}
}

// GeneratePrime handles GET /primes?bits=N[&exponent=E]
// @Summary Generate a random prime
// @Description With exponent set the prime p also satisfies p mod exponent != 1.
// @Tags Prime
// @Produce json
// @Param bits query int true "Bit length"
// @Param exponent query int false "Public exponent to avoid"
// @Success 200 {object} PrimeResponse
// @Failure 400 {object} ErrorResponse
// @Router /primes [get]
func (handler *primeHandler) GeneratePrime(ctx *gin.Context) {
	var query PrimeQuery

	bits, err := strconv.Atoi(ctx.Query("bits"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid bits: %q", ctx.Query("bits"))})
		return
	}
	query.Bits = bits

	if raw := ctx.Query("exponent"); raw != "" {
		exponent, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid exponent: %q", raw)})
			return
		}
		query.Exponent = exponent
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	prime, err := handler.rsaProcessor.GeneratePrime(query.Bits, query.Exponent)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, PrimeResponse{
		Bits:    prime.BitLen(),
		Decimal: prime.String(),
		Hex:     prime.Text(16),
	})
}

// IsPrime handles GET /primes/:candidate
// @Summary Test a decimal candidate for primality
// @Tags Prime
// @Produce json
// @Param candidate path string true "Decimal candidate"
// @Success 200 {object} PrimalityResponse
// @Failure 400 {object} ErrorResponse
// @Router /primes/{candidate} [get]
func (handler *primeHandler) IsPrime(ctx *gin.Context) {
	raw := ctx.Param("candidate")
	if len(raw) > maxCandidateDigits {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("candidate exceeds %d digits", maxCandidateDigits)})
		return
	}

	candidate, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid decimal candidate: %q", raw)})
		return
	}

	prime, err := handler.rsaProcessor.IsPrime(candidate)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, PrimalityResponse{Candidate: candidate.String(), Prime: prime})
}
