package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstTickIsImmediate(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first call should tick immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate call ticked before a full step elapsed")
	}
}

func TestFixedStepResetReprimes(t *testing.T) {
	fs := NewFixedStep(1)
	fs.ShouldStep()
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("Reset should re-prime the accumulator for an immediate tick")
	}
}

func TestFixedStepAccumulatesElapsedTime(t *testing.T) {
	fs := NewFixedStep(100)
	fs.ShouldStep()
	time.Sleep(15 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed but no tick was granted")
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Errorf("step = %v, want %v", fs.step, time.Second/60)
	}
	fs.SetTPS(-5)
	if fs.step != time.Second/60 {
		t.Errorf("step after SetTPS(-5) = %v, want %v", fs.step, time.Second/60)
	}
}
