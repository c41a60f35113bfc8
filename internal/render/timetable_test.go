package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viola-academy/academy_app/internal/model"
)

func TestTimetableProducesValidPNG(t *testing.T) {
	entries := []model.TimetableEntry{
		{DayIdx: 0, DayName: "Sunday", Time: "08:00", Class: "KG1 A", Subject: "Math", Teacher: "Ms. Huda"},
		{DayIdx: 1, DayName: "Monday", Time: "09:00", Class: "KG1 A", Subject: "English", Teacher: "Mr. John"},
	}

	data, err := Timetable("KG1 A", entries)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, imageWidth, img.Bounds().Dx())
	require.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestTimetableEmptySchedule(t *testing.T) {
	data, err := Timetable("KG1 A", nil)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}
