package settings

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка оборачиваемости не задана
	ErrSettingNotFound = errors.New("settings.repository: setting not found")

	// ErrOperatingHoursNotFound возвращается, когда для дня недели нет расписания
	ErrOperatingHoursNotFound = errors.New("settings.repository: operating hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
