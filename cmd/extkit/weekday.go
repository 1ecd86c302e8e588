package main

import "github.com/ib-77/extkit/pkg/ext/enum"

type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdays = enum.Register(
	enum.M("Monday", Monday),
	enum.M("Tuesday", Tuesday),
	enum.M("Wednesday", Wednesday),
	enum.M("Thursday", Thursday),
	enum.M("Friday", Friday),
	enum.M("Saturday", Saturday),
	enum.M("Sunday", Sunday),
)

func (d Weekday) String() string {
	name, ok := weekdays.Name(d)
	if !ok {
		return "Weekday(?)"
	}
	return name
}
