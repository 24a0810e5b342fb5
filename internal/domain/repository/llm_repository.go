package repository

import "context"

// LLMRepository - интерфейс чат-модели для генерации текстовых маршрутов.
// Возвращает сырой текст ответа; парсинг - забота вызывающего use case.
type LLMRepository interface {
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
