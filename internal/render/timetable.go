package render

import (
	"bytes"
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/viola-academy/academy_app/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth      = 1200
	imageHeight     = 800
	headerHeight    = 90
	leftLabelsWidth = 110
	cellPaddingX    = 8
	cellPaddingY    = 6
	cardRadius      = 6.0
	shadowOffset    = 3.0
	schoolDays      = 5
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	timeLabelColor = color.RGBA{110, 115, 120, 200}
	gridLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	cardColor       = color.RGBA{133, 193, 85, 220}
	cardTextColor   = color.RGBA{20, 24, 28, 230}
	cardShadowColor = color.RGBA{0, 0, 0, 20}
)

// Timetable генерирует PNG недельной сетки класса: колонки это учебные дни
// с воскресенья по четверг, строки это времена уроков
func Timetable(class string, entries []model.TimetableEntry) ([]byte, error) {
	times := collectTimes(entries)
	byCell := groupByCell(entries)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth) / schoolDays
	gridHeight := imageHeight - headerHeight
	rows := len(times)
	if rows == 0 {
		rows = 1
	}
	cellHeight := float64(gridHeight) / float64(rows)

	drawHeader(dc, class)
	drawTimeLabels(dc, times, cellHeight)
	drawDays(dc, times, byCell, dayWidth, gridHeight, cellHeight)

	return encodeImage(dc)
}

type cellKey struct {
	dayIdx int
	time   string
}

// collectTimes уникальные времена уроков недели по возрастанию
func collectTimes(entries []model.TimetableEntry) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Time] = struct{}{}
	}
	times := make([]string, 0, len(seen))
	for t := range seen {
		times = append(times, t)
	}
	sort.Strings(times)
	return times
}

func groupByCell(entries []model.TimetableEntry) map[cellKey]model.TimetableEntry {
	byCell := make(map[cellKey]model.TimetableEntry, len(entries))
	for _, e := range entries {
		byCell[cellKey{dayIdx: e.DayIdx, time: e.Time}] = e
	}
	return byCell
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return dc
}

// drawHeader рисует заголовок с названием класса
func drawHeader(dc *gg.Context, class string) {
	title := "Weekly Timetable"
	if class != "" {
		title += " - " + class
	}
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/3, 0.5, 0.5)
}

// drawTimeLabels рисует колонку времён слева
func drawTimeLabels(dc *gg.Context, times []string, cellHeight float64) {
	dc.SetColor(timeLabelColor)
	for i, t := range times {
		y := float64(headerHeight) + float64(i)*cellHeight + cellHeight/2
		dc.DrawStringAnchored(t, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDays рисует колонки дней с карточками уроков
func drawDays(dc *gg.Context, times []string, byCell map[cellKey]model.TimetableEntry,
	dayWidth, gridHeight int, cellHeight float64) {

	for dayIdx := 0; dayIdx < schoolDays; dayIdx++ {
		x := float64(leftLabelsWidth + dayIdx*dayWidth)
		y := float64(headerHeight)

		drawDayBackground(dc, x, y, dayWidth, gridHeight, dayIdx)
		drawDayHeader(dc, model.WeekdayNames[dayIdx], x, y, dayWidth)
		drawGridLines(dc, x, y, dayWidth, len(times), cellHeight)

		for row, t := range times {
			entry, ok := byCell[cellKey{dayIdx: dayIdx, time: t}]
			if !ok {
				continue
			}
			drawLessonCard(dc, entry, x, y+float64(row)*cellHeight, dayWidth, cellHeight)
		}
	}
}

// drawDayBackground рисует фон колонки дня
func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, gridHeight, dayIdx int) {
	if dayIdx%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(gridHeight))
	dc.Fill()
}

// drawDayHeader рисует название учебного дня
func drawDayHeader(dc *gg.Context, name string, x, y float64, dayWidth int) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(name, x+float64(dayWidth)/2, y-12, 0.5, 0.5)
}

// drawGridLines рисует горизонтальные линии строк
func drawGridLines(dc *gg.Context, x, y float64, dayWidth, rows int, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(gridLineColor)
	for i := 0; i <= rows; i++ {
		ly := y + float64(i)*cellHeight
		dc.DrawLine(x, ly, x+float64(dayWidth), ly)
		dc.Stroke()
	}
}

// drawLessonCard рисует карточку урока: предмет и учитель
func drawLessonCard(dc *gg.Context, entry model.TimetableEntry, x, y float64, dayWidth int, cellHeight float64) {
	cardW := float64(dayWidth) - float64(cellPaddingX*2)
	cardH := cellHeight - float64(cellPaddingY*2)

	// Тень
	dc.SetColor(cardShadowColor)
	dc.DrawRoundedRectangle(x+cellPaddingX+shadowOffset, y+cellPaddingY+shadowOffset, cardW, cardH, cardRadius)
	dc.Fill()

	// Карточка
	dc.SetColor(cardColor)
	dc.DrawRoundedRectangle(x+cellPaddingX, y+cellPaddingY, cardW, cardH, cardRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(cardColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+cellPaddingX, y+cellPaddingY, cardW, cardH, cardRadius)
	dc.Stroke()

	dc.SetColor(cardTextColor)
	txtX := x + cellPaddingX + 8
	txtY := y + cellPaddingY + 16
	dc.DrawStringAnchored(truncate(entry.Subject, 22), txtX, txtY, 0, 0)
	if entry.Teacher != "" && cardH > 30 {
		dc.DrawStringAnchored(truncate(entry.Teacher, 22), txtX, txtY+16, 0, 0)
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
