package carousel

// loopTarget reports where a settled position must silently jump to. Only
// the padding copies at 0 and length-1 jump: the leading copy to the last
// real item, the trailing copy to the first.
func loopTarget(position, length int, loop bool) (int, bool) {
	if !loop || length <= 1 {
		return position, false
	}
	switch {
	case position >= length-1:
		return 1, true
	case position <= 0:
		return length - 2, true
	}
	return position, false
}

// onSettleComplete runs the loop illusion when the spring reports completion.
func (c *Carousel) onSettleComplete() {
	c.m.settled()
	if c.m.flags.Jumping {
		// The zero-duration jump itself completing; the frame callback ends it.
		return
	}
	if to, ok := loopTarget(c.m.position, c.m.length, c.cfg.Loop); ok {
		c.silentJump(to)
	}
}

// silentJump resets position to to and snaps the offset with no animation.
// The jump flag is cleared on the next frame so the following position
// change animates normally.
func (c *Carousel) silentJump(to int) {
	c.m.jumpTo(to)
	c.m.beginJump()
	c.spring.JumpTo(c.target())

	if c.jumpFrame != 0 {
		c.eng.CancelFrame(c.jumpFrame)
	}
	c.jumpFrame = c.eng.RequestFrame(c.finishJump)
	c.notify()
}

func (c *Carousel) finishJump() {
	c.jumpFrame = 0
	if !c.attached {
		return
	}
	c.m.endJump()
	c.notify()
}

// interruptJump ends a pending jump early so the next step animates.
func (c *Carousel) interruptJump() {
	if !c.m.flags.Jumping {
		return
	}
	if c.jumpFrame != 0 {
		c.eng.CancelFrame(c.jumpFrame)
		c.jumpFrame = 0
	}
	c.m.endJump()
}
