package eventing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Tolerância entre o timestamp assinado e o relógio local, para limitar
// ataques de replay
const signatureTolerance = 5 * time.Minute

const signatureScheme = "v1"

// verifySignature valida o cabeçalho Stripe-Signature
// (formato "t=<unix>,v1=<hex>") contra o segredo do endpoint. O HMAC-SHA256
// é calculado sobre "<timestamp>.<payload>" e comparado em tempo constante.
func verifySignature(payload []byte, header, secret string, now time.Time) error {
	if header == "" || secret == "" {
		return ErrInvalidSignature
	}

	var timestamp int64 = -1
	var signatures [][]byte

	for _, part := range strings.Split(header, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}

		switch pair[0] {
		case "t":
			parsed, err := strconv.ParseInt(pair[1], 10, 64)
			if err != nil {
				return errors.Wrap(ErrInvalidSignature, "timestamp inválido")
			}
			timestamp = parsed
		case signatureScheme:
			signature, err := hex.DecodeString(pair[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, signature)
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return errors.Wrap(ErrInvalidSignature, "cabeçalho de assinatura incompleto")
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return errors.Wrap(ErrInvalidSignature, "timestamp fora da tolerância")
	}

	expected := computeSignature(payload, secret, timestamp)
	for _, signature := range signatures {
		if hmac.Equal(expected, signature) {
			return nil
		}
	}

	return errors.Wrap(ErrInvalidSignature, "nenhuma assinatura confere")
}

func computeSignature(payload []byte, secret string, timestamp int64) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}
