package infrastructure_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zaptest"

	"github.com/mortisbot/mortis/pkg/infrastructure"
)

func TestNewFxLoggerAdapter(t *testing.T) {
	logger := zaptest.NewLogger(t)

	adapter := infrastructure.NewFxLoggerAdapter(logger)

	var _ fxevent.Logger = adapter

	if adapter == nil {
		t.Fatal("NewFxLoggerAdapter returned nil")
	}
}

func TestNewFxPrinter(t *testing.T) {
	logger := zaptest.NewLogger(t)

	printer := infrastructure.NewFxPrinter(logger)

	var _ fx.Printer = printer

	if printer == nil {
		t.Fatal("NewFxPrinter returned nil")
	}

	printer.Printf("formatted %s", "message")
}

func TestFxLoggerAdapter_LogEvent(t *testing.T) {
	logger := zaptest.NewLogger(t)
	adapter := infrastructure.NewFxLoggerAdapter(logger)

	// Exercise every event branch to ensure none panic.
	events := []fxevent.Event{
		&fxevent.OnStartExecuting{FunctionName: "testFunc", CallerName: "testCaller"},
		&fxevent.OnStartExecuted{FunctionName: "testFunc", CallerName: "testCaller", Runtime: time.Millisecond},
		&fxevent.OnStartExecuted{FunctionName: "testFunc", CallerName: "testCaller", Err: errors.New("start failed")},
		&fxevent.OnStopExecuting{FunctionName: "testFunc", CallerName: "testCaller"},
		&fxevent.OnStopExecuted{FunctionName: "testFunc", CallerName: "testCaller", Runtime: time.Millisecond},
		&fxevent.Supplied{TypeName: "*config.Config"},
		&fxevent.Provided{OutputTypeNames: []string{"*zap.Logger"}},
		&fxevent.Provided{OutputTypeNames: []string{"*zap.Logger"}, Err: errors.New("provide failed")},
		&fxevent.Invoking{FunctionName: "testFunc"},
		&fxevent.Invoked{FunctionName: "testFunc"},
		&fxevent.Invoked{FunctionName: "testFunc", Err: errors.New("invoke failed")},
		&fxevent.Stopping{},
		&fxevent.Stopped{},
		&fxevent.Stopped{Err: errors.New("stop failed")},
		&fxevent.RollingBack{StartErr: errors.New("rollback cause")},
		&fxevent.RolledBack{},
		&fxevent.Started{},
		&fxevent.LoggerInitialized{ConstructorName: "NewZapLogger"},
	}

	for _, event := range events {
		adapter.LogEvent(event)
	}
}
