package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultContractPrefix starts every generated contract number
const DefaultContractPrefix = "CTR"

const (
	suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLen      = 4
)

// GenerateContractNumber returns PREFIX-YYYYMMDD-XXXX with a random base36 suffix
func GenerateContractNumber(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultContractPrefix
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), randomSuffix())
}

func randomSuffix() string {
	id := uuid.New()
	out := make([]byte, suffixLen)
	for i := range out {
		out[i] = suffixAlphabet[int(id[i])%len(suffixAlphabet)]
	}
	return string(out)
}
