package paramkit

// planStep binds one parameter declaration to its fetch index and, when the
// capability offers one, its precompiled inline check.
type planStep struct {
	param  Param
	index  int
	inline CheckFunc
}

// compilationPlan is the planner's output: the ordered step list plus the
// single global execution strategy. The strategy is all-or-nothing: the fast
// path is picked only when every step can be inlined, otherwise the whole
// plan runs through the generic fallback. Mixing strategies per step would
// buy little and cost a predictable cost model.
type compilationPlan struct {
	set         *SpecSet
	opts        options
	steps       []planStep
	specialized bool
}

// planValidation walks the declarations in order and records, per parameter,
// how to fetch the raw value, whether a default substitutes on absence, and
// whether the capability can be inlined. It never fails: every spec problem
// was already rejected by NewSpecSet.
func planValidation(set *SpecSet, opts options) *compilationPlan {
	plan := &compilationPlan{
		set:   set,
		opts:  opts,
		steps: make([]planStep, 0, set.Len()),
	}

	specialized := !opts.forceGeneric
	for i, p := range set.params {
		step := planStep{param: p, index: i}
		if inl, ok := p.capability.(Inliner); ok {
			step.inline = inl.InlineCheck()
		} else {
			specialized = false
		}
		plan.steps = append(plan.steps, step)
	}
	plan.specialized = specialized

	return plan
}
