package delivery

import "github.com/ibeloyar/courierdesk/internal/model"

// Pool - предложенные курьеру заказы. Без ограничения размера и без TTL,
// дубликаты по id не отбрасываются.
type Pool struct {
	items []model.Assignment
}

func (p *Pool) Add(a model.Assignment) {
	p.items = append(p.items, a)
}

func (p *Pool) Set(list []model.Assignment) {
	p.items = append(make([]model.Assignment, 0, len(list)), list...)
}

// Remove убирает из пула все записи с этим id и возвращает первую из них
func (p *Pool) Remove(id string) (model.Assignment, bool) {
	var found model.Assignment
	ok := false

	kept := p.items[:0]
	for _, a := range p.items {
		if a.ID == id {
			if !ok {
				found = a
				ok = true
			}
			continue
		}
		kept = append(kept, a)
	}
	clear(p.items[len(kept):])
	p.items = kept

	return found, ok
}

func (p *Pool) List() []model.Assignment {
	return append(make([]model.Assignment, 0, len(p.items)), p.items...)
}

func (p *Pool) Len() int {
	return len(p.items)
}
