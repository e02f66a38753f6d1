package handler

import (
	"net/http"

	"github.com/sureshkirannz/EmployeeKPI/internal/api/handler/router"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/authenticating"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/crm"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/progressing"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/reporting"
	"github.com/sureshkirannz/EmployeeKPI/internal/usecases/tracking"
	"github.com/sureshkirannz/EmployeeKPI/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Employees(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees",
			Method:      http.MethodGet,
			Handler:     ListEmployees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees",
			Method:      http.MethodPost,
			Handler:     CreateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodPut,
			Handler:     UpdateEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Targets(service tracking.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees/:id/kpi-targets/:year",
			Method:      http.MethodGet,
			Handler:     GetEmployeeKpiTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/kpi-targets",
			Method:      http.MethodPost,
			Handler:     CreateKpiTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/kpi-targets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateKpiTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/kpi-targets/:year",
			Method:      http.MethodGet,
			Handler:     GetMyKpiTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/employees/:id/sales-targets/:year",
			Method:      http.MethodGet,
			Handler:     GetEmployeeSalesTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sales-targets",
			Method:      http.MethodPost,
			Handler:     CreateSalesTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sales-targets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSalesTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sales-targets/:year",
			Method:      http.MethodGet,
			Handler:     GetMySalesTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Activities(service tracking.ActivityService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/activities/weekly",
			Method:      http.MethodGet,
			Handler:     ListWeeklyActivities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities/weekly",
			Method:      http.MethodPost,
			Handler:     UpsertWeeklyActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities/weekly/:id",
			Method:      http.MethodPut,
			Handler:     UpdateWeeklyActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities/daily",
			Method:      http.MethodGet,
			Handler:     ListDailyActivities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities/daily",
			Method:      http.MethodPost,
			Handler:     UpsertDailyActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Loans(service tracking.LoanService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/loans",
			Method:      http.MethodGet,
			Handler:     ListLoans(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/loans",
			Method:      http.MethodPost,
			Handler:     CreateLoan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/loans/:id",
			Method:      http.MethodPut,
			Handler:     UpdateLoan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/loans/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteLoan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Progress(service progressing.Progressor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpi-progress",
			Method:      http.MethodGet,
			Handler:     GetKpiProgress(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/overview",
			Method:      http.MethodGet,
			Handler:     GetTeamOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/progress-history/:id",
			Method:      http.MethodGet,
			Handler:     GetProgressHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Realtors(service crm.RelationshipService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/realtor-partners",
			Method:      http.MethodGet,
			Handler:     ListRealtorPartners(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/realtor-partners",
			Method:      http.MethodPost,
			Handler:     CreateRealtorPartner(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/realtor-partners/:id",
			Method:      http.MethodPut,
			Handler:     UpdateRealtorPartner(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/past-clients",
			Method:      http.MethodGet,
			Handler:     GetPastClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/past-clients",
			Method:      http.MethodPut,
			Handler:     UpdatePastClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/top-realtors",
			Method:      http.MethodGet,
			Handler:     GetTopRealtors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/top-realtors",
			Method:      http.MethodPut,
			Handler:     UpdateTopRealtors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Coaching(service crm.CoachingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees/:id/coaching-notes",
			Method:      http.MethodGet,
			Handler:     ListCoachingNotes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/coaching-notes",
			Method:      http.MethodPost,
			Handler:     CreateCoachingNote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/coaching-notes/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCoachingNote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
