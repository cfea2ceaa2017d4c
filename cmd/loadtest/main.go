// Command loadtest нагружает OrderService по gRPC и печатает сводку задержек и ошибок.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	boutiquev1 "github.com/vladislavdragonenkov/boutique/proto/boutique/v1"
)

type loadMode string

const (
	modeCreate          loadMode = "create"
	modeCreateAddClose  loadMode = "create-add-close"
	modeConcurrentClose loadMode = "concurrent-close"
)

const statusFulfilled = "FULFILLED"

type config struct {
	addr        string
	total       int
	totalSet    bool
	duration    time.Duration
	concurrency int
	connections int
	timeout     time.Duration
	mode        loadMode
	customerID  int64
	productID   int64
	quantity    int
	racers      int
	outputPath  string
}

func parseConfig(args []string) (config, error) {
	var (
		cfg       config
		modeValue string
	)

	flags := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	flags.IntVar(&cfg.total, "total", 400, "total scenarios to execute in count mode; in duration mode only used when explicitly set")
	flags.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration (e.g. 10m, 15m)")
	flags.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	flags.IntVar(&cfg.connections, "connections", 20, "number of gRPC client connections")
	flags.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	flags.StringVar(&modeValue, "mode", string(modeCreate), "load mode: create | create-add-close | concurrent-close")
	flags.Int64Var(&cfg.customerID, "customer-id", 1, "catalog customer id for created orders")
	flags.Int64Var(&cfg.productID, "product-id", 1, "catalog product id for added items")
	flags.IntVar(&cfg.quantity, "quantity", 1, "item quantity")
	flags.IntVar(&cfg.racers, "racers", 8, "parallel CloseOrder calls per order in concurrent-close mode")
	flags.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	flags.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return cfg, err
	}
	cfg.mode = mode

	switch {
	case cfg.duration < 0:
		return cfg, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when duration is not set")
	case cfg.duration > 0 && cfg.totalSet && cfg.total <= 0:
		return cfg, errors.New("total must be > 0 when explicitly set with duration")
	case cfg.concurrency <= 0:
		return cfg, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return cfg, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return cfg, errors.New("timeout must be > 0")
	case cfg.customerID <= 0:
		return cfg, errors.New("customer-id must be > 0")
	case cfg.productID <= 0:
		return cfg, errors.New("product-id must be > 0")
	case cfg.quantity <= 0:
		return cfg, errors.New("quantity must be > 0")
	case cfg.mode == modeConcurrentClose && cfg.racers < 2:
		return cfg, errors.New("racers must be >= 2 in concurrent-close mode")
	}

	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeCreate, modeCreateAddClose, modeConcurrentClose:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	clients := make([]boutiquev1.OrderServiceClient, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, dialErr := grpc.NewClient(cfg.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if dialErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to create grpc client connection: %v\n", dialErr)
			os.Exit(1)
		}
		conns = append(conns, conn)
		clients = append(clients, boutiquev1.NewOrderServiceClient(conn))
	}

	result := runLoad(cfg, clients)
	for _, conn := range conns {
		_ = conn.Close()
	}

	printReport(os.Stdout, result, cfg)
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}

	if result.FailedScenarios > 0 || (result.CloseRaces != nil && result.CloseRaces.Violations > 0) {
		os.Exit(1)
	}
}

// runLoad раздаёт сценарии воркерам поверх переданных клиентов и собирает отчёт.
func runLoad(cfg config, clients []boutiquev1.OrderServiceClient) report {
	startedAt := time.Now()
	runID := uuid.NewString()
	col := newCollector()

	jobs := make(chan int, cfg.concurrency*2)
	var wg sync.WaitGroup
	for workerID := 0; workerID < cfg.concurrency; workerID++ {
		wg.Add(1)
		go func(cli boutiquev1.OrderServiceClient) {
			defer wg.Done()
			for id := range jobs {
				_ = runScenario(cli, cfg, id, runID, col)
			}
		}(clients[workerID%len(clients)])
	}

	dispatchJobs(jobs, cfg)
	wg.Wait()

	result := col.buildReport(startedAt, time.Since(startedAt))
	result.RunID = runID
	result.Mode = string(cfg.mode)
	return result
}

func dispatchJobs(jobs chan<- int, cfg config) {
	defer close(jobs)

	if cfg.duration <= 0 {
		for i := 0; i < cfg.total; i++ {
			jobs <- i
		}
		return
	}

	timer := time.NewTimer(cfg.duration)
	defer timer.Stop()

	for i := 0; ; i++ {
		if cfg.totalSet && i >= cfg.total {
			return
		}

		select {
		case <-timer.C:
			return
		case jobs <- i:
		}
	}
}

func runScenario(client boutiquev1.OrderServiceClient, cfg config, index int, runID string, col *collector) (err error) {
	scenarioStart := time.Now()
	defer func() {
		col.record(scenarioMethod, time.Since(scenarioStart), grpcCode(err))
	}()

	order, err := callCreateOrder(client, cfg, fmt.Sprintf("lt-%s-%d", runID, index), col)
	if err != nil {
		return err
	}
	if order.GetOrderId() <= 0 {
		return status.Error(codes.Internal, "create response returned empty order id")
	}
	if cfg.mode == modeCreate {
		return nil
	}

	if err := callAddItem(client, cfg, order.GetOrderId(), col); err != nil {
		return err
	}

	if cfg.mode == modeConcurrentClose {
		return raceClose(client, cfg, order.GetOrderId(), col)
	}

	closed, err := callCloseOrder(client, cfg.timeout, order.GetOrderId(), col)
	if err != nil {
		return err
	}
	if closed.GetStatus() != statusFulfilled {
		return status.Errorf(codes.Internal, "order %d closed with status %s", order.GetOrderId(), closed.GetStatus())
	}
	return nil
}

// raceClose одновременно отправляет cfg.racers вызовов CloseOrder и проверяет, что успешен ровно один,
// а остальные получили FailedPrecondition.
func raceClose(client boutiquev1.OrderServiceClient, cfg config, orderID int64, col *collector) error {
	start := make(chan struct{})
	results := make(chan error, cfg.racers)

	var wg sync.WaitGroup
	for i := 0; i < cfg.racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := callCloseOrder(client, cfg.timeout, orderID, col)
			results <- err
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	winners := 0
	var unexpected error
	for err := range results {
		switch grpcCode(err) {
		case codes.OK:
			winners++
		case codes.FailedPrecondition:
		default:
			unexpected = err
		}
	}
	col.recordRace(winners)

	if unexpected != nil {
		return unexpected
	}
	if winners != 1 {
		return status.Errorf(codes.Internal, "order %d closed %d times", orderID, winners)
	}
	return nil
}

func callCreateOrder(client boutiquev1.OrderServiceClient, cfg config, description string, col *collector) (*boutiquev1.Order, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	resp, err := client.CreateOrder(ctx, &boutiquev1.CreateOrderRequest{
		CustomerId:  cfg.customerID,
		Description: description,
	})
	col.record("CreateOrder", time.Since(start), grpcCode(err))
	if err != nil {
		return nil, err
	}
	return resp.GetOrder(), nil
}

func callAddItem(client boutiquev1.OrderServiceClient, cfg config, orderID int64, col *collector) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	_, err := client.AddItem(ctx, &boutiquev1.AddItemRequest{
		OrderId:   orderID,
		ProductId: cfg.productID,
		Quantity:  int32(cfg.quantity),
	})
	col.record("AddItem", time.Since(start), grpcCode(err))
	return err
}

func callCloseOrder(client boutiquev1.OrderServiceClient, timeout time.Duration, orderID int64, col *collector) (*boutiquev1.Order, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CloseOrder(ctx, &boutiquev1.CloseOrderRequest{OrderId: orderID})
	col.record("CloseOrder", time.Since(start), grpcCode(err))
	if err != nil {
		return nil, err
	}
	return resp.GetOrder(), nil
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}
