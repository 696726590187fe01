// Package messages holds the user facing strings of the console and their
// translations. English text doubles as the catalog key.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Prompts and menu lines.
const (
	MenuHeader      = "Stack exercises:"
	MenuPrompt      = "Choose a task (1-13) or 0 to exit:"
	InvalidChoice   = "Invalid input. Try again."
	InvalidValue    = "Invalid input."
	EnterValue      = "Enter a value to push onto the stack:"
	EnterBrackets   = "Enter a string to check bracket balance:"
	EnterReverse    = "Enter a string to reverse:"
	EnterPalindrome = "Enter a string to check for a palindrome:"
	EnterInfix      = "Enter an infix expression:"
)

// Menu entries, in menu order starting at 1.
var MenuEntries = []string{
	"Push a value",
	"Check bracket balance",
	"Reverse a string",
	"Show the minimum",
	"Check for a palindrome",
	"Convert infix to postfix",
	"Show the stack sorted",
	"Sum of the elements",
	"Remove duplicates",
	"Check for cycles",
	"Pop a value",
	"Peek at the top",
	"Show the stack",
}

// Result lines.
const (
	Pushed        = "Value %s added to the stack."
	Popped        = "Popped value: %s"
	Top           = "Top element: %s"
	Minimum       = "Minimum element in the stack: %s"
	Contents      = "Stack contents: %s"
	Sum           = "Sum of all elements in the stack: %s"
	Deduplicated  = "Duplicates removed."
	Sorted        = "Sorted stack: %s"
	Balanced      = "Brackets are balanced."
	Unbalanced    = "Brackets are not balanced."
	Reversed      = "Reversed string: %s"
	Palindrome    = "The string is a palindrome."
	NotPalindrome = "The string is not a palindrome."
	Postfix       = "Postfix expression: %s"
	CyclesFound   = "Cycle check: cycles found."
	NoCycles      = "Cycle check: no cycles."
	StackEmpty    = "The stack is empty."
	Failure       = "Error: %s"
)

var russian = map[string]string{
	MenuHeader:      "Задания со стеком:",
	MenuPrompt:      "Выберите задание (1-13) или 0 для выхода:",
	InvalidChoice:   "Неверный ввод. Попробуйте снова.",
	InvalidValue:    "Неверный ввод.",
	EnterValue:      "Введите значение для добавления в стек:",
	EnterBrackets:   "Введите строку для проверки сбалансированности скобок:",
	EnterReverse:    "Введите строку для переворота:",
	EnterPalindrome: "Введите строку для проверки на палиндром:",
	EnterInfix:      "Введите инфиксное выражение:",

	"Push a value":             "Добавить значение",
	"Check bracket balance":    "Проверить скобки",
	"Reverse a string":         "Перевернуть строку",
	"Show the minimum":         "Минимальный элемент",
	"Check for a palindrome":   "Проверить палиндром",
	"Convert infix to postfix": "Инфикс в постфикс",
	"Show the stack sorted":    "Отсортировать стек",
	"Sum of the elements":      "Сумма элементов",
	"Remove duplicates":        "Удалить дубликаты",
	"Check for cycles":         "Проверить на циклы",
	"Pop a value":              "Извлечь значение",
	"Peek at the top":          "Верхний элемент",
	"Show the stack":           "Показать стек",

	Pushed:        "Значение %s добавлено.",
	Popped:        "Извлечено значение: %s",
	Top:           "Верхний элемент: %s",
	Minimum:       "Минимальный элемент в стеке: %s",
	Contents:      "Содержимое стека: %s",
	Sum:           "Сумма всех элементов в стеке: %s",
	Deduplicated:  "Дубликаты удалены.",
	Sorted:        "Отсортированный стек: %s",
	Balanced:      "Скобки сбалансированы.",
	Unbalanced:    "Скобки не сбалансированы.",
	Reversed:      "Перевернутая строка: %s",
	Palindrome:    "Строка является палиндромом.",
	NotPalindrome: "Строка не является палиндромом.",
	Postfix:       "Постфиксное выражение: %s",
	CyclesFound:   "Проверка на циклы: есть циклы.",
	NoCycles:      "Проверка на циклы: циклов нет.",
	StackEmpty:    "Стек пуст.",
	Failure:       "Ошибка: %s",
}

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var translations = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			panic(err)
		}
	}
	return b
}()

// Language resolves a language name such as "en" or "ru" to a supported tag.
// An empty name selects English.
func Language(name string) (language.Tag, error) {
	if name == "" {
		return language.English, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", name, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("unsupported language %q (expected en or ru)", name)
	}
	return supported[idx], nil
}

// NewPrinter returns a printer translating the constants of this package.
func NewPrinter(name string) (*message.Printer, error) {
	tag, err := Language(name)
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag, message.Catalog(translations)), nil
}
