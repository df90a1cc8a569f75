package settings

import (
	"github.com/m04kA/table-buddy/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
