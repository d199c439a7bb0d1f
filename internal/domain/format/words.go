package format

import (
	"fmt"
	"strings"
)

// Сумма прописью определена только для российских рублей — это требование
// русских печатных форм, на другие валюты оно не обобщается.

var (
	wordUnits = [10]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	wordTeens = [10]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	wordTens = [10]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	wordHundreds = [10]string{"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

// plural выбирает форму существительного по числу: 1 рубль, 2 рубля, 5 рублей;
// 11–19 всегда берут форму родительного множественного.
func plural(n int64, one, few, many string) string {
	r := n % 100
	if r >= 11 && r <= 19 {
		return many
	}
	switch r % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	}
	return many
}

// chunk произносит число 0..999. Для женского рода (тысячи) один/два
// становятся одна/две, в том числе когда это последнее слово.
func chunk(n int64, feminine bool) string {
	if n == 0 {
		return ""
	}
	h := n / 100
	t := (n % 100) / 10
	u := n % 10

	var parts []string
	if h > 0 {
		parts = append(parts, wordHundreds[h])
	}
	if t == 1 {
		parts = append(parts, wordTeens[u])
		return strings.Join(parts, " ")
	}
	if t > 1 {
		parts = append(parts, wordTens[t])
	}
	if u > 0 {
		unit := wordUnits[u]
		if feminine {
			switch u {
			case 1:
				unit = "одна"
			case 2:
				unit = "две"
			}
		}
		parts = append(parts, unit)
	}
	return strings.Join(parts, " ")
}

// AmountInWords записывает сумму в копейках прописью: целая часть русскими
// числительными с согласованием рода и падежа, затем склонённый «рубль» и
// копейки двумя цифрами со склонённой «копейкой».
// Нулевая целая часть даёт «Ноль рублей NN копеек».
func AmountInWords(kopecks int64) string {
	rub := kopecks / 100
	kop := kopecks % 100

	rubWord := plural(rub, "рубль", "рубля", "рублей")
	kopWord := plural(kop, "копейка", "копейки", "копеек")

	if rub == 0 {
		return fmt.Sprintf("Ноль %s %02d %s", rubWord, kop, kopWord)
	}

	billions := rub / 1_000_000_000
	millions := (rub / 1_000_000) % 1000
	thousands := (rub / 1000) % 1000
	remainder := rub % 1000

	var parts []string
	if billions > 0 {
		parts = append(parts, chunk(billions%1000, false),
			plural(billions, "миллиард", "миллиарда", "миллиардов"))
	}
	if millions > 0 {
		parts = append(parts, chunk(millions, false),
			plural(millions, "миллион", "миллиона", "миллионов"))
	}
	if thousands > 0 {
		parts = append(parts, chunk(thousands, true),
			plural(thousands, "тысяча", "тысячи", "тысяч"))
	}
	if remainder > 0 {
		parts = append(parts, chunk(remainder, false))
	}

	words := strings.Join(parts, " ")
	runes := []rune(words)
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	words = string(runes)

	return fmt.Sprintf("%s %s %02d %s", words, rubWord, kop, kopWord)
}
