package model

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestInsets_Add(t *testing.T) {
	a := Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}
	b := NewUniformInsets(10)

	sum := a.Add(b)
	expected := Insets{Top: 11, Left: 12, Bottom: 13, Right: 14}

	if sum != expected {
		t.Errorf("Insets.Add() = %+v, expected %+v", sum, expected)
	}
}

func TestInsets_IsZero(t *testing.T) {
	if !(Insets{}).IsZero() {
		t.Error("zero-value Insets should report IsZero")
	}
	if (Insets{Bottom: 1}).IsZero() {
		t.Error("non-zero Insets should not report IsZero")
	}
}

func TestFrame_Center(t *testing.T) {
	frame := NewFrame(100, 50, 160, 90)

	center := frame.Center()
	expected := fyne.NewPos(180, 95)

	if center != expected {
		t.Errorf("Frame.Center() = %v, expected %v", center, expected)
	}
}

func TestFrame_WithCenter(t *testing.T) {
	frame := NewFrame(0, 0, 160, 90)

	moved := frame.WithCenter(fyne.NewPos(400, 200))

	if moved.Position != fyne.NewPos(320, 155) {
		t.Errorf("Frame.WithCenter() position = %v, expected (320,155)", moved.Position)
	}
	if moved.Size != frame.Size {
		t.Errorf("Frame.WithCenter() must preserve size, got %v", moved.Size)
	}
}
