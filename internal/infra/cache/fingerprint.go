package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Операции, результаты которых проходят через кеш
// TTL настраивается отдельно для каждой операции: вердикты устаревают вместе
// с журналом бронирований, котировки живут дольше
const (
	OpQuote    = "quote"
	OpValidate = "validate"
)

// Fingerprint вычисляет стабильный ключ кеша из операции, версии конфигурации
// продукта и канонической формы запроса
// Версия конфигурации входит в ключ, поэтому изменение конфигурации
// автоматически инвалидирует все записи продукта
func Fingerprint(operation string, configVersion int64, canonicalRequest string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(operation)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.FormatInt(configVersion, 10))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(canonicalRequest)
	return h.Sum64()
}
