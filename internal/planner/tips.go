package planner

import "fmt"

// Tip — совет дня с главного экрана.
type Tip struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

var tips = []Tip{
	{ID: 1, Text: "ดื่มน้ำหลังตื่นนอน 1 แก้ว"},
	{ID: 2, Text: "ออกกำลังกายอย่างน้อย 30 นาทีต่อวัน"},
	{ID: 3, Text: "นอนหลับให้ครบ 7-8 ชั่วโมง"},
	{ID: 4, Text: "ทานผักและผลไม้ให้หลากหลาย"},
	{ID: 5, Text: "ยืดเหยียดกล้ามเนื้อทุกวัน"},
}

// Tips возвращает все советы в порядке карусели.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

// TipByID возвращает совет по идентификатору.
func TipByID(id int) (Tip, error) {
	for _, t := range tips {
		if t.ID == id {
			return t, nil
		}
	}
	return Tip{}, fmt.Errorf("tip %d not found", id)
}
