package address

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/usecase"
	"github.com/manzil-geoservice/internal/usecase/dto"
	"github.com/manzil-geoservice/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// ResolveWorker обрабатывает события создания адресов по точке: читает
// stream:address:resolve, резолвит координаты в адресную цепочку, сохраняет
// снимок и публикует результат в stream:address:done
type ResolveWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	addressUC    *usecase.AddressUseCase
	consumerName string
}

// NewResolveWorker создает новый ResolveWorker
func NewResolveWorker(
	streamRepo repository.StreamRepository,
	addressUC *usecase.AddressUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *ResolveWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ResolveWorker{
		BaseWorker:   worker.NewBaseWorker("address-resolve", consumerGroup, logger),
		streamRepo:   streamRepo,
		addressUC:    addressUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *ResolveWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ResolveWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAddressResolve, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку сообщений.
// Возвращает количество прочитанных сообщений.
func (w *ResolveWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAddressResolve,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamAddressResolve, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.handleEvent(ctx, event)
		messageIDs = append(messageIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamAddressResolve, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	logger.Info("Batch processed", zap.Int("processed", len(messageIDs)))
	return len(messages), nil
}

// handleEvent создаёт адрес по событию и публикует done-событие.
// Ошибка резолва или записи уходит в done-событие, не прерывая пачку.
func (w *ResolveWorker) handleEvent(ctx context.Context, event *domain.AddressResolveEvent) {
	logger := w.Logger()

	done := &domain.AddressDoneEvent{RequestID: event.RequestID}

	if !event.HasCoordinates() {
		done.Error = "latitude and longitude are required"
	} else {
		address, err := w.addressUC.CreateFromPoint(ctx, &dto.CreateAddressRequest{
			Latitude:    event.Latitude,
			Longitude:   event.Longitude,
			HouseNumber: event.HouseNumber,
			Description: event.Description,
		})
		if err != nil {
			logger.Warn("Failed to create address from event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			done.Error = err.Error()
		} else {
			done.Address = address
		}
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamAddressDone, done); err != nil {
		logger.Error("Failed to publish done event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}
}

// parseMessage парсит сообщение стрима в AddressResolveEvent
func (w *ResolveWorker) parseMessage(msg domain.StreamMessage) (*domain.AddressResolveEvent, error) {
	var event domain.AddressResolveEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}
