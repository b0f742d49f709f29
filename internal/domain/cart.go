package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cart — корзина одного клиента
type Cart struct {
	Token     string
	Lines     []CartLine
	UpdatedAt time.Time
}

// CartLine — позиция корзины: снимок товара, количество и выбранные опции.
// Идентичность для слияния = (ID товара, канонический ключ опций).
type CartLine struct {
	LineID          string
	Product         Product
	Quantity        int
	SelectedOptions map[string]string
}

func NewCartLine(lineID string, product Product, selectedOptions map[string]string) *CartLine {
	return &CartLine{
		LineID:          lineID,
		Product:         product,
		Quantity:        1,
		SelectedOptions: selectedOptions,
	}
}

// MergeKey возвращает канонический ключ слияния позиции.
// Ключи опций сортируются, поэтому порядок в map не влияет на результат.
func (l *CartLine) MergeKey() string {
	return MergeKey(l.Product.ID, l.SelectedOptions)
}

// mergeKeyEscaper экранирует разделители сериализации: значение опции
// вида "1;b=2" не должно совпадать с парой опций {"a":"1","b":"2"}.
var mergeKeyEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, ";", `\;`, "=", `\=`)

// MergeKey сериализует идентичность позиции: "productID|k1=v1;k2=v2".
// Разделители внутри идентификатора, ключей и значений экранируются.
func MergeKey(productID string, selectedOptions map[string]string) string {
	if len(selectedOptions) == 0 {
		return mergeKeyEscaper.Replace(productID)
	}

	keys := make([]string, 0, len(selectedOptions))
	for k := range selectedOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(mergeKeyEscaper.Replace(productID))
	b.WriteByte('|')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(mergeKeyEscaper.Replace(k))
		b.WriteByte('=')
		b.WriteString(mergeKeyEscaper.Replace(selectedOptions[k]))
	}

	return b.String()
}

// Subtotal — стоимость позиции: эффективная цена за единицу * количество.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total — сумма стоимостей всех позиций корзины.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Lines {
		total = total.Add(c.Lines[i].Subtotal())
	}

	return total
}

// Count — суммарное количество единиц во всех позициях (для бейджа корзины).
func (c *Cart) Count() int {
	count := 0
	for i := range c.Lines {
		count += c.Lines[i].Quantity
	}

	return count
}
