package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategy-dashboard-api/internal/scheduler"
	"github.com/vfg2006/strategy-dashboard-api/pkg/apiErrors"
)

// Tipos de cron job aceitos em /v1/cron/run/:type
const (
	CronJobTypeMonthlySnapshots = "monthly-snapshots"
	CronJobTypeAll              = "all"
)

// CronJobServices associa o tipo da URL ao agendador correspondente
type CronJobServices map[string]scheduler.Job

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := make(map[string]bool)

		if cronType == CronJobTypeAll {
			for name, job := range services {
				started[name] = job.TriggerManualSync()
			}
		} else {
			job, exists := services[cronType]
			if !exists || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		logrus.WithFields(logrus.Fields{
			"job":     cronType,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
