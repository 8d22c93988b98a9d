package routes

import (
	"context"
	"log"
	"os"

	"seguradora_xpto/internal/adapter/http/handlers"
	repository "seguradora_xpto/internal/adapter/persistence/repository"
	"seguradora_xpto/internal/infrastructure/awsenv"
	"seguradora_xpto/internal/infrastructure/database"
	"seguradora_xpto/internal/infrastructure/messaging"
	"seguradora_xpto/internal/usecase"
	"seguradora_xpto/internal/usecase/interfaces"

	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
)

const PathPropostas = "/propostas"

// RunProposta starts the proposal service HTTP server.
func RunProposta() {
	router := newRouter()

	ddb := database.ConnectDynamoDB()
	proposalRepo := repository.NewProposalDynamoRepository(ddb)

	var publisher interfaces.IMessagePublisher
	snsPublisher, err := buildSNSPublisher()
	if err != nil {
		log.Printf("[proposta][sns] publisher not configured: %v", err)
	} else {
		publisher = snsPublisher
	}

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, publisher)
	propostaHandler := handlers.NewPropostaHandler(proposalUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPropostaRoutes(v1, propostaHandler)

	port := serverPort("8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func addPropostaRoutes(rg *gin.RouterGroup, handler *handlers.PropostaHandler) {
	propostas := rg.Group(PathPropostas)
	{
		propostas.POST("", handler.CreateProposta)
		propostas.GET("", handler.ListPropostas)
		propostas.GET("/:id", handler.GetProposta)
		propostas.PATCH("/:id/status", handler.ChangePropostaStatus)
	}
}

func buildSNSPublisher() (*messaging.SNSPublisher, error) {
	cfg, err := awsenv.NewConfig(context.Background())
	if err != nil {
		return nil, err
	}
	return messaging.NewSNSPublisher(awssns.NewFromConfig(cfg), os.Getenv("PROPOSTA_APROVADA_TOPIC_ARN"))
}
