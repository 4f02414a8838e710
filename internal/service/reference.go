package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// newReference generates a short display reference such as RCT-4F9A2C.
func newReference(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%s", prefix, token[:6])
}
