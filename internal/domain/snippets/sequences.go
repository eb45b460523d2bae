package snippets

import (
	"fmt"

	"github.com/mouse-blink/kata/internal/domain"
	"github.com/mouse-blink/kata/internal/domain/hof"
	m "github.com/mouse-blink/kata/internal/model"
)

func registerSequences(r domain.Registry) error {
	if err := r.Register("map-filter-reduce", m.TopicSequences, mapFilterReduce); err != nil {
		return err
	}

	if err := r.Register("flatten", m.TopicSequences, flatten); err != nil {
		return err
	}

	return r.Register("sort-by-age", m.TopicSequences, sortByAge)
}

func mapFilterReduce() ([]string, error) {
	var lines []string

	numbers := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	tens := hof.Map([]int{1, 2, 3}, func(x int) int { return x * 10 })
	lines = append(lines, fmt.Sprintf("map *10 over [1 2 3] = %v", tens))

	thirds := hof.Filter(numbers, func(x int) bool { return x%3 == 0 })
	lines = append(lines, fmt.Sprintf("filter %%3==0 over 1..10 = %v", thirds))

	sum := hof.Reduce(numbers, 0, func(acc, x int) int { return acc + x })
	lines = append(lines, fmt.Sprintf("reduce + over 1..10 = %d", sum))

	evenSum := hof.Reduce(
		hof.From(numbers).Filter(func(x int) bool { return x%2 == 0 }).Collect(),
		0,
		func(acc, x int) int { return acc + x },
	)
	lines = append(lines, fmt.Sprintf("filter even then reduce + = %d", evenSum))

	return lines, nil
}

func flatten() ([]string, error) {
	flat := hof.Flatten([][]int{{1, 3}, {2}, {}})

	return []string{fmt.Sprintf("flatten [[1 3] [2] []] = %v", flat)}, nil
}

func sortByAge() ([]string, error) {
	type person struct {
		name string
		age  int
	}

	people := []person{
		{name: "mara", age: 12},
		{name: "ivo", age: 2},
		{name: "nell", age: 4},
	}

	sorted := hof.SortStable(people, func(a, b person) bool { return a.age < b.age })

	names := hof.Map(sorted, func(p person) string { return p.name })

	return []string{fmt.Sprintf("sorted by age = %v", names)}, nil
}
