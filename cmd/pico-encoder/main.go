//go:build rp2040

// cmd/pico-encoder/main.go
//
// Pico demo: the encoder service publishes position through the
// data-exchange layer while every task prints through a TextQueue whose
// bytes are pumped to UART0 by a single console task.
package main

import (
	"context"
	"time"

	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"intertask-go/comms"
	"intertask-go/services/encoder"
	"intertask-go/x/fmtx"
)

const (
	encPinA = machine.GP14
	encPinB = machine.GP15
)

func main() {
	// Allow USB CDC to enumerate before anything prints.
	time.Sleep(2 * time.Second)

	// Tasks print into the text queue; only the pump below touches the UART.
	console := comms.NewTextQueue(256, "console")
	fmtx.DefaultOutput = console

	uart := uartx.UART0
	_ = uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	dev, err := encoder.NewQuadrature(encPinA, encPinB, 4)
	if err != nil {
		println("encoder: configure failed")
		return
	}
	svc := encoder.New(encoder.Config{Name: "enc", SampleHz: 200, DeltaQueueLen: 32}, dev)
	go svc.Run(context.Background())

	// Reporter task: latest position once a second, registry report every ten.
	go func() {
		pos := svc.Position()
		n := 0
		for {
			time.Sleep(1 * time.Second)
			if v, ok := pos.TryGet(); ok {
				fmtx.Printf("pos %d\n", v)
			}
			n++
			if n%10 == 0 {
				comms.PrintAll(console)
			}
		}
	}()

	// Console pump.
	buf := make([]byte, 64)
	for {
		n, err := console.Read(buf)
		if err != nil {
			continue
		}
		uart.Write(buf[:n])
	}
}
