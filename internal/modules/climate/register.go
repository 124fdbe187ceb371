package climate

import (
	"database/sql"
	"net/http"

	"climate-server/internal/db"
	"climate-server/internal/modules/climate/controller"
	"climate-server/internal/modules/climate/repository"
	"climate-server/internal/modules/climate/service"
	"climate-server/internal/modules/climate/types"
)

// Tables lists the relations and columns the climate queries read.
var Tables = []db.Table{
	{Name: types.MeasurementTable, Columns: types.MeasurementColumns},
	{Name: types.StationTable, Columns: types.StationColumns},
}

func RegisterFeature(mux *http.ServeMux, conn *sql.DB, driver string) {
	climateRepository := repository.NewRepository(conn, driver)
	climateService := service.NewService(climateRepository)
	climateController := controller.NewClimateController(climateService)
	climateController.RegisterRoutes(mux)
}
