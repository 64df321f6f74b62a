// Package docs Manzil Geoservice API.
//
// Геосервис административной иерархии Узбекистана: области, районы,
// махалли и улицы с геометрией GeoJSON. Предоставляет точечный резолв
// координат в адресную цепочку, сводное дерево иерархии со счётчиками,
// панель статистики и создание точечных адресов.
//
// Основные возможности:
// - Резолв точки в цепочку улица/махалля/район/область
// - Сводное дерево областей и районов со счётчиками потомков
// - Счётчики для панели статистики с учётом текущего выбора
// - Поиск по имени и SOATO-коду среди всех типов сущностей
// - Создание адресов с денормализованным снимком иерархии
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
