package kvstore

import "context"

// Store непрозрачное key-value хранилище приложения: строковые ключи,
// значения это сериализованный JSON. Атомарность гарантируется на уровне
// ключа; SetMulti записывает несколько ключей одной транзакцией.
type Store interface {
	// Get возвращает значение и признак наличия ключа
	Get(ctx context.Context, key string) (string, bool, error)
	// Set записывает значение целиком
	Set(ctx context.Context, key, value string) error
	// SetMulti атомарно записывает несколько ключей
	SetMulti(ctx context.Context, values map[string]string) error
	// Remove удаляет ключи, отсутствующие молча пропускает
	Remove(ctx context.Context, keys ...string) error
	// Clear очищает всё пространство ключей приложения
	Clear(ctx context.Context) error
}
