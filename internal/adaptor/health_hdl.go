package adaptor

import (
	"net/http"

	"shop-backend/pkg/utils"
)

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "OK", nil)
}
