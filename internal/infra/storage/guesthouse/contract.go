package guesthouse

import "github.com/m04kA/GHM-BookingService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД, совместим с *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
