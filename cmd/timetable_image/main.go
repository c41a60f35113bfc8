package main

import (
	"flag"
	"log"
	"os"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/render"
)

// Утилита для проверки рендера сетки расписания без запуска сервера
func main() {
	out := flag.String("out", "timetable.png", "путь к выходному PNG")
	class := flag.String("class", "KG1 A", "класс")
	flag.Parse()

	entries := []model.TimetableEntry{
		{DayIdx: 0, DayName: "Sunday", Time: "08:00", Class: *class, Subject: "Math", Teacher: "Ms. Huda"},
		{DayIdx: 0, DayName: "Sunday", Time: "09:00", Class: *class, Subject: "English", Teacher: "Mr. John"},
		{DayIdx: 1, DayName: "Monday", Time: "08:00", Class: *class, Subject: "Science", Teacher: "Ms. Huda"},
		{DayIdx: 2, DayName: "Tuesday", Time: "10:00", Class: *class, Subject: "Art", Teacher: "Ms. Huda"},
		{DayIdx: 4, DayName: "Thursday", Time: "09:00", Class: *class, Subject: "Math", Teacher: "Ms. Huda"},
	}

	png, err := render.Timetable(*class, entries)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("written %s (%d bytes)", *out, len(png))
}
