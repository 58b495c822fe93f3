package engine

// Callbacks is the engine's only outward channel: the UI, audio and
// persistence collaborators subscribe here. Every callback is invoked
// synchronously from within the engine call that caused it, and any field
// may be left nil. The engine never recovers a panicking callback; a
// misbehaving subscriber is the caller's problem.
type Callbacks struct {
	OnGameStart   func()
	OnGameEnd     func()
	OnPause       func()
	OnResume      func()
	OnLineClear   func(rows []int)
	OnLevelUp     func(level int)
	OnPiecePlace  func()
	OnPieceMove   func()
	OnPieceRotate func()
	OnHold        func()
}

func (c Callbacks) gameStart() {
	if c.OnGameStart != nil {
		c.OnGameStart()
	}
}

func (c Callbacks) gameEnd() {
	if c.OnGameEnd != nil {
		c.OnGameEnd()
	}
}

func (c Callbacks) pause() {
	if c.OnPause != nil {
		c.OnPause()
	}
}

func (c Callbacks) resume() {
	if c.OnResume != nil {
		c.OnResume()
	}
}

func (c Callbacks) lineClear(rows []int) {
	if c.OnLineClear != nil {
		c.OnLineClear(rows)
	}
}

func (c Callbacks) levelUp(level int) {
	if c.OnLevelUp != nil {
		c.OnLevelUp(level)
	}
}

func (c Callbacks) piecePlace() {
	if c.OnPiecePlace != nil {
		c.OnPiecePlace()
	}
}

func (c Callbacks) pieceMove() {
	if c.OnPieceMove != nil {
		c.OnPieceMove()
	}
}

func (c Callbacks) pieceRotate() {
	if c.OnPieceRotate != nil {
		c.OnPieceRotate()
	}
}

func (c Callbacks) hold() {
	if c.OnHold != nil {
		c.OnHold()
	}
}
