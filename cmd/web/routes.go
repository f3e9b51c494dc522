package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	api := func(next http.HandlerFunc) http.Handler {
		return noCache(timeout(next))
	}

	mux.Handle("GET /api/healthy", api(app.healthy))

	mux.Handle("GET /api/program", api(app.programGET))
	mux.Handle("GET /api/categories", api(app.categoriesGET))
	mux.Handle("GET /api/categories/{category}", api(app.categoryGET))
	mux.Handle("GET /api/exercises/{name}/alternatives", api(app.alternativesGET))
	mux.Handle("GET /exercises/{name}/info", timeout(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/profile", api(app.profileGET))
	mux.Handle("PUT /api/profile", api(app.profilePUT))

	mux.Handle("GET /api/one-rep-max", api(app.oneRMGET))
	mux.Handle("PUT /api/one-rep-max", api(app.oneRMPUT))
	mux.Handle("GET /api/one-rep-max/estimate", api(app.oneRMEstimateGET))
	mux.Handle("GET /api/one-rep-max/equipment", api(app.oneRMEquipmentGET))
	mux.Handle("PUT /api/one-rep-max/equipment/{lift}", api(app.oneRMEquipmentPUT))

	mux.Handle("GET /api/weeks/{week}/days/{day}", api(app.dayGET))
	mux.Handle("PUT /api/weeks/{week}/days/{day}/exercises/{exercise}/sets/{set}", api(app.setPUT))
	mux.Handle("PUT /api/weeks/{week}/days/{day}/exercises/{exercise}/equipment", api(app.equipmentPUT))
	mux.Handle("POST /api/weeks/{week}/days/{day}/complete", api(app.dayCompletePOST))
	mux.Handle("POST /api/weeks/{week}/days/{day}/unlock", api(app.dayUnlockPOST))
	mux.Handle("POST /api/weeks/{week}/days/{day}/toggle", api(app.dayTogglePOST))
	mux.Handle("DELETE /api/weeks/{week}/days/{day}", api(app.dayDELETE))
	mux.Handle("DELETE /api/weeks/{week}", api(app.weekDELETE))
	mux.Handle("DELETE /api/data", api(app.dataDELETE))

	return app.recoverPanic(app.logAndTraceRequest(secureHeaders(crossOriginProtection(mux))))
}
