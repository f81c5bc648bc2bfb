package record

import "context"

// Pager is the explicit cursor behind the "infinite" record list: pages
// accumulate keyed by page index, and the caller decides when to pull the
// next one (in the SPA a sentinel entering the viewport did it).
type Pager struct {
	svc    *Service
	params ListParams

	pages map[int][]Record
	next  int
	done  bool
}

// NewPager starts a pager at page 0 with the given filters. The Page field of
// params is ignored.
func (s *Service) NewPager(params ListParams) *Pager {
	if params.Limit <= 0 {
		params.Limit = 10
	}
	return &Pager{
		svc:    s,
		params: params,
		pages:  make(map[int][]Record),
	}
}

// FetchNextPage pulls one more page. It returns that page's records and
// whether more pages may remain; a short page ends the sequence.
func (p *Pager) FetchNextPage(ctx context.Context) ([]Record, bool, error) {
	if p.done {
		return nil, false, nil
	}

	params := p.params
	params.Page = p.next
	page, err := p.svc.List(ctx, params)
	if err != nil {
		return nil, !p.done, err
	}

	p.pages[p.next] = page
	p.next++
	if len(page) < p.params.Limit {
		p.done = true
	}
	return page, !p.done, nil
}

// Records returns everything fetched so far, in page order.
func (p *Pager) Records() []Record {
	var all []Record
	for i := 0; i < p.next; i++ {
		all = append(all, p.pages[i]...)
	}
	return all
}
