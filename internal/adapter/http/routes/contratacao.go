package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"seguradora_xpto/internal/adapter/http/handlers"
	repository "seguradora_xpto/internal/adapter/persistence/repository"
	"seguradora_xpto/internal/infrastructure/awsenv"
	"seguradora_xpto/internal/infrastructure/database"
	"seguradora_xpto/internal/infrastructure/messaging"
	"seguradora_xpto/internal/infrastructure/proposals"
	"seguradora_xpto/internal/usecase"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
)

const PathContratacoes = "/contratacoes"

const shutdownTimeout = 10 * time.Second

// RunContratacao starts the contracting service: the HTTP server plus the
// queue consumer that reacts to proposal approvals. Both stop on SIGINT or
// SIGTERM, and the consumer is drained before the process exits.
func RunContratacao() {
	router := newRouter()

	ddb := database.ConnectDynamoDB()
	policyRepo := repository.NewPolicyDynamoRepository(ddb)

	proposalClient, err := proposals.NewClient(os.Getenv("PROPOSTA_SERVICE_URL"))
	if err != nil {
		log.Fatalf("Failed to configure the proposta service client: %v", err)
	}

	policyUseCase := usecase.NewPolicyUseCase(policyRepo, proposalClient)
	contratacaoHandler := handlers.NewContratacaoHandler(policyUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContratacaoRoutes(v1, contratacaoHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	startPropostaAprovadaConsumer(ctx, &wg, policyUseCase)

	server := &http.Server{
		Addr:    ":" + serverPort("8081"),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[contratacao] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[contratacao] server shutdown failed: %v", err)
	}
	wg.Wait()
}

func addContratacaoRoutes(rg *gin.RouterGroup, handler *handlers.ContratacaoHandler) {
	contratacoes := rg.Group(PathContratacoes)
	{
		contratacoes.POST("", handler.ContractProposta)
		contratacoes.GET("", handler.ListContratacoes)
		contratacoes.GET("/:id", handler.GetContratacao)
	}
}

func startPropostaAprovadaConsumer(ctx context.Context, wg *sync.WaitGroup, uc usecase.IPolicyUseCase) {
	queueURL := os.Getenv("PROPOSTA_APROVADA_QUEUE_URL")
	if queueURL == "" {
		log.Printf("[contratacao][sqs] PROPOSTA_APROVADA_QUEUE_URL not set, consumer disabled")
		return
	}

	cfg, err := awsenv.NewConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to configure the SQS consumer: %v", err)
	}

	consumer := messaging.NewSQSConsumer(awssqs.NewFromConfig(cfg), queueURL)
	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Run(ctx, uc.HandlePropostaAprovada)
	}()
}
