// Package docs Trip Recommender API.
//
// Сервис подбора направлений для поездок. Геокодирует точку старта,
// считает достижимую дистанцию из бюджета времени поездки и рекомендует
// города с достопримечательностями в дистанционной полосе вокруг цели.
//
// Основные возможности:
// - Подбор до 5 городов под длительность поездки
// - Список достопримечательностей города с фильтрацией по типам
// - Генерация детального маршрута по городу через LLM
// - Статистика по каталогу мест
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
