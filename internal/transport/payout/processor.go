// Package payout проводит запланированные расходы через внешний API
// провайдера выплат.
package payout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"time"

	"github.com/ralexrdz/opencollective-api/internal/domain"
	"github.com/ralexrdz/opencollective-api/internal/metrics"
	"github.com/ralexrdz/opencollective-api/internal/service"
	"github.com/ralexrdz/opencollective-api/internal/transport/payout/client"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultLimitPerIteration uint = 100
	defaultPayoutWorkers     uint = 10
	idlePause                     = 5 * time.Second
)

// Processor обрабатывает выплаты по расходам через внешний API провайдера.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	payoutWorkers     uint
}

// New создает новый экземпляр процессора выплат.
func New(svs Servicer, apiBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "payout",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(apiBaseURL),
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		payoutWorkers:     defaultPayoutWorkers,
	}
}

// SetLimitPerIteration устанавливает кол-во расходов, обрабатываемых в одной итерации обработчика.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetPayoutWorkers устанавливает кол-во воркеров работающих с выплатами.
func (p *Processor) SetPayoutWorkers(workers uint) *Processor {
	p.payoutWorkers = workers
	return p
}

// Run запускает обработку выплат в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации цикла, запрашивает через сервисный слой список расходов
//     запланированных к выплате. Объем списка лимитируется через SetLimitPerIteration.
//  2. Для каждой итерации создаются N воркеров (кол-во настраивается через SetPayoutWorkers)
//     которые, в свою очередь, отправляют выплаты на API провайдера.
//  3. Результат работы отправляется через сервисный слой: успешные расходы
//     помечаются оплаченными и проводятся по леджеру, неудачные копят попытки.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"payoutWorkers":     p.payoutWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoExpenses) {
					p.l.WithError(err).Error("process error")
				}
				// без запланированных расходов нет смысла дергать БД.
				select {
				case <-ctx.Done():
				case <-time.After(idlePause):
				}
			}
		}
	}
}

// process выполняет цикл обработки выплат: получение списка, отправку на API провайдера и фиксацию результатов.
// Возвращает ошибку в случае проблем или ErrNoExpenses если нечего выплачивать.
func (p *Processor) process(ctx context.Context) error {
	expenses, expensesErr := p.produce(ctx)

	if expensesErr != nil {
		return fmt.Errorf("process: %w", expensesErr)
	}

	results := p.runWorkers(ctx, expenses)
	if len(results) == 0 {
		return nil
	}

	var updateArgs = make([]service.PayoutResultArgs, 0, len(results))
	for _, result := range results {
		updateArgs = append(updateArgs, service.PayoutResultArgs{
			Error:     result.Error,
			ExpenseID: result.Expense.ID,
			Fee:       result.Fee,
			Reference: result.Reference,
		})
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.UpdatePayoutResults(reqCtx, updateArgs); updErr != nil {
		return fmt.Errorf("process: %s", updErr.Error())
	}

	return nil
}

// workerResult представляет результат работы воркера по отправке выплаты.
type workerResult struct {
	WorkerID  uint
	Expense   *domain.Expense
	Error     error
	Fee       decimal.Decimal
	Reference string
}

// runWorkers запускает параллельных воркеров для отправки выплат и ожидает конца их работы.
// Реализует паттерн fan-out/fan-in для параллельной обработки запросов.
func (p *Processor) runWorkers(ctx context.Context, expenses []domain.Expense) []workerResult {
	var taskCh = make(chan *domain.Expense, len(expenses))

	for _, expense := range expenses {
		expense := expense
		taskCh <- &expense
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.payoutWorkers)) // nolint:gosec

	var resultCh = make(chan *workerResult, len(expenses))

	for i := uint(0); i < p.payoutWorkers; i++ {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(expenses))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"expenseID": result.Expense.ID,
			"attempt":   result.Expense.Attempts + 1,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("submit payout for expense")
			metrics.PayoutRuns.WithLabelValues("error").Inc()
		} else {
			l.WithField("reference", result.Reference).Info("Success")
			metrics.PayoutRuns.WithLabelValues("success").Inc()
		}
		results = append(results, *result)
	}
	return results
}

// worker обрабатывает расходы из канала, отправляет выплаты через API и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Expense,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask отправляет выплату на API провайдера, в случае получения ошибки 429, ждет N секунд указанные
// в заголовке ответа.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.Expense) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.client.SubmitPayout(reqCtx, client.PayoutRequest{
			ExpenseID: task.ID,
			Method:    string(task.PayoutMethodType),
			Details:   task.PayoutDetails,
			Amount:    task.Amount,
			Currency:  task.Currency,
		})
		cancel()

		// Проверяем ошибку на TooManyRequestError для повторной попытки
		if err != nil {
			result := workerResult{
				WorkerID: workerID,
				Expense:  task,
			}
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					// После паузы делаем повторную попытку
					continue
				}
			} else {
				result.Error = err
				return &result
			}
		}

		return &workerResult{
			WorkerID:  workerID,
			Expense:   task,
			Fee:       resp.Fee,
			Reference: resp.Reference,
		}
	}
}

// produce получает список расходов запланированных к выплате.
// Возвращает ErrNoExpenses, если расходы отсутствуют.
func (p *Processor) produce(ctx context.Context) ([]domain.Expense, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	expenses, expensesErr := p.svs.ExpensesForPayout(produceCtx, p.limitPerIteration)
	if expensesErr != nil {
		return nil, fmt.Errorf("produce: %w", expensesErr)
	}

	if len(expenses) == 0 {
		return nil, ErrNoExpenses
	}
	return expenses, nil
}
