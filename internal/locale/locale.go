// Package locale holds the string table used for every player-visible
// message the engine produces. The engine itself is locale-agnostic:
// mechanics never depend on the table, so swapping in a translated
// table changes wording only.
package locale

// Table is the complete set of message templates for one language.
// Chamber positions are rendered 1-based everywhere; the engine stores
// them 0-based.
type Table struct {
	// Setup
	SetupSpectator   string // bullet count, chamber list, trigger position
	SetupParticipant string // bullet count, trigger position

	// Cylinder events
	BulletAddedSpectator string // chamber
	BulletAddedHidden    string
	ChambersFull         string
	TriggerMoved         string // chamber
	FireHit              string // chamber
	FireBlank            string // chamber

	// Inspection
	InspectSpectator  string // player, chamber, loaded/empty word
	InspectResult     string // chamber, loaded/empty word
	ChamberLoadedWord string
	ChamberEmptyWord  string

	// Modifiers
	ReverseActivated  string
	ContractActivated string // shots remaining
	ContractExpired   string
	ContractStatusOn  string // shots remaining
	ContractStatusOff string
	ReverseFlipped    string // player, new target

	// Item bookkeeping
	ItemUsedSpectator   string // player, item, detail
	ItemUsedParticipant string // player
	ItemNotHeld         string
	ItemNeedsPosition   string
	PositionOutOfRange  string // max chamber

	// Communication
	KeptSilent    string // player
	Says          string // player, message
	ProposesTruce string // player, message
	RespondsTruce string // player, response

	// Chronicle
	NoHistory string

	// Negotiation classification
	AcceptKeyword string

	// Prompt scaffolding
	RulesText   string // chambers, max bullets, item count
	ReplyFormat string
}

// Default returns the English table.
func Default() Table {
	return Table{
		SetupSpectator:   "Setup: %d rounds loaded into chambers %s, trigger starts at chamber %d",
		SetupParticipant: "Setup: %d rounds loaded at random, trigger starts at chamber %d",

		BulletAddedSpectator: "a round was slipped into chamber %d",
		BulletAddedHidden:    "an extra round was loaded into the cylinder",
		ChambersFull:         "every chamber already holds a round",
		TriggerMoved:         "the trigger advanced to chamber %d",
		FireHit:              "fired on chamber %d: HIT",
		FireBlank:            "fired on chamber %d: blank",

		InspectSpectator:  "%s inspected chamber %d: %s",
		InspectResult:     "chamber %d is %s",
		ChamberLoadedWord: "loaded",
		ChamberEmptyWord:  "empty",

		ReverseActivated:  "a reverse charm was invoked; the next shot by the other duelist will be turned around",
		ContractActivated: "a blood contract binds the duel for the next %d shots: if either falls, both fall",
		ContractExpired:   "the blood contract has expired",
		ContractStatusOn:  "active (%d shots remain)",
		ContractStatusOff: "inactive",
		ReverseFlipped:    "the reverse charm turns the shot around: %s now aims at %s",

		ItemUsedSpectator:   "%s used %s: %s",
		ItemUsedParticipant: "%s used an item",
		ItemNotHeld:         "invalid item or item not held",
		ItemNeedsPosition:   "the inspect item needs a chamber number",
		PositionOutOfRange:  "chamber must be between 1 and %d",

		KeptSilent:    "%s kept silent",
		Says:          "%s says: %s",
		ProposesTruce: "%s proposes a truce: %s",
		RespondsTruce: "%s responds: %s",

		NoHistory: "The duel has not begun.",

		AcceptKeyword: "accept",

		RulesText: `Rules of the duel:
A revolver with %d chambers has been loaded with between 1 and %d rounds at
random positions. A coin toss decides who goes first; the duelists then
alternate turns. On your turn you may, in order: use one item, speak to your
opponent (or propose a truce, which ends the duel in a draw if they accept),
and finally fire at yourself or at your opponent. The trigger advances one
chamber after every shot, and also when the Push item is used.

Each duelist starts with %d items dealt at random from this list:
1. ExtraBullet: load one more round into a random empty chamber
2. Inspect: learn whether a chamber of your choice is loaded (only you learn it)
3. Reverse: the next shot taken by your opponent has its target flipped
4. Contract: for the next 3 shots, if either duelist falls, both fall
5. Push: advance the trigger one chamber without firing

Your opponent can see that you used an item, but not which one, except for
Reverse, Contract and Push whose effects are announced openly.`,

		ReplyFormat: `[ITEM]
To use an item write: its name, then a parameter if it needs one (Inspect takes a chamber number).
To pass write: none
[/ITEM]

[SAY]
To talk write: talk followed by your words.
To propose a truce write: negotiate followed by your terms.
To stay quiet write: silent
[/SAY]

[FIRE]
Write: self or opponent
[/FIRE]`,
	}
}
