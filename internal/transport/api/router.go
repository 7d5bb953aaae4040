package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ralexrdz/opencollective-api/internal/metrics"
	"github.com/ralexrdz/opencollective-api/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"

	CollectivesRoute            = "/collectives"
	CollectiveRoute             = "/collectives/:slug"
	CollectiveBalanceRoute      = "/collectives/:slug/balance"
	CollectiveActivitiesRoute   = "/collectives/:slug/activities"
	CollectiveTransactionsRoute = "/collectives/:slug/transactions"
	CollectiveApplyRoute        = "/collectives/:slug/apply"
	CollectiveOrdersRoute       = "/collectives/:slug/orders"
	CollectiveExpensesRoute     = "/collectives/:slug/expenses"
	CollectiveCardsRoute        = "/collectives/:slug/virtual-cards"

	HostApplicationApproveRoute = "/host/applications/:id/approve"
	HostApplicationRejectRoute  = "/host/applications/:id/reject"

	OrdersRoute = "/orders"
	OrderRoute  = "/orders/:id"

	ExpenseApproveRoute  = "/expenses/:id/approve"
	ExpenseRejectRoute   = "/expenses/:id/reject"
	ExpenseScheduleRoute = "/expenses/:id/schedule"
	ExpenseQuoteRoute    = "/expenses/:id/quote"

	CardPauseRoute  = "/virtual-cards/:uuid/pause"
	CardResumeRoute = "/virtual-cards/:uuid/resume"

	TransactionRefundRoute = "/transactions/:groupId/refund"

	CardChargesWebhookRoute = "/webhooks/card-charges"

	MetricsRoute = "/metrics"
	HealthzRoute = "/healthz"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	CollectiveService  CollectiveServicer
	OrderService       OrderServicer
	ExpenseService     ExpenseServicer
	TransactionService TransactionServicer
	VirtualCardService VirtualCardServicer
	JWTSecretKey       []byte
	// CardWebhookSecret сверяется с заголовком X-Webhook-Secret на вебхуке
	// списаний. Пустое значение отключает проверку.
	CardWebhookSecret string
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	collectivesHandler := NewCollectivesHandler(args.CollectiveService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	expensesHandler := NewExpensesHandler(args.ExpenseService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)
	cardsHandler := NewVirtualCardsHandler(args.VirtualCardService, args.CardWebhookSecret)

	r.GET(MetricsRoute, gin.WrapH(metrics.Handler()))
	r.GET(HealthzRoute, func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// Вебхук аутентифицируется общим секретом провайдера, а не jwt юзера.
	api.POST(CardChargesWebhookRoute, cardsHandler.ProcessCharge)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(CollectivesRoute, collectivesHandler.Create)
	api.GET(CollectiveRoute, collectivesHandler.Show)
	api.GET(CollectiveBalanceRoute, collectivesHandler.Balance)
	api.GET(CollectiveActivitiesRoute, collectivesHandler.Activities)
	api.POST(CollectiveApplyRoute, collectivesHandler.ApplyToHost)
	api.POST(HostApplicationApproveRoute, collectivesHandler.ApproveApplication)
	api.POST(HostApplicationRejectRoute, collectivesHandler.RejectApplication)

	api.POST(CollectiveOrdersRoute, ordersHandler.Contribute)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.DELETE(OrderRoute, ordersHandler.Cancel)

	api.POST(CollectiveExpensesRoute, expensesHandler.Submit)
	api.GET(CollectiveExpensesRoute, expensesHandler.Index)
	api.POST(ExpenseApproveRoute, expensesHandler.Approve)
	api.POST(ExpenseRejectRoute, expensesHandler.Reject)
	api.POST(ExpenseScheduleRoute, expensesHandler.Schedule)
	api.GET(ExpenseQuoteRoute, expensesHandler.Quote)

	api.GET(CollectiveTransactionsRoute, transactionsHandler.Index)
	api.POST(TransactionRefundRoute, transactionsHandler.Refund)

	api.POST(CollectiveCardsRoute, cardsHandler.Create)
	api.POST(CardPauseRoute, cardsHandler.Pause)
	api.POST(CardResumeRoute, cardsHandler.Resume)

	return r, nil
}
