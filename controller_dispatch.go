package juice

import "log"

func (self *Juice) resolveTarget(target Target) Target {
	if target != nil {
		return target
	}
	if self.target == nil {
		panic(missingTarget)
	}
	return self.target
}

func (self *Juice) tweenEffect(kind Kind, target Target, dir Direction, config *Config, destroyOnComplete bool) *Juice {
	target = self.resolveTarget(target)
	params := Merge(Preset(kind, target, dir), config)
	effect := &presets[kind]
	switch effect.loops {
	case loopsNone:
		params.Yoyo, params.Repeat = false, 0
	case loopsRepeat:
		params.Yoyo = false
	}
	self.animate(kind, target, params, effect.props(params, target), destroyOnComplete)
	return self
}

func (self *Juice) animate(kind Kind, target Target, params Params, props []PropValue, destroyOnComplete bool) {
	request := Request{
		Props:    props,
		Duration: params.Duration,
		Yoyo:     params.Yoyo,
		Repeat:   params.Repeat,
		Ease:     params.Ease,
		Delay:    params.Delay,
		Paused:   params.Paused,
		OnStart: func(handle Handle, target Target) {
			if params.OnStart != nil {
				params.OnStart(handle, target)
			}
		},
		OnComplete: func(handle Handle, target Target) {
			if params.OnComplete != nil {
				params.OnComplete(handle, target)
			}
			if destroyOnComplete {
				handle.Remove()
				if self.handles[kind] == handle {
					delete(self.handles, kind)
				}
			}
		},
	}

	handle, err := self.scene.Animate(target, request)
	if err != nil {
		self.fail(kind, err)
		return
	}
	self.handles[kind] = handle
}

func (self *Juice) fail(kind Kind, err error) {
	log.Printf("[juice] %s: %v", kind, err)
	if self.err == nil {
		self.err = err
	}
}
