package personality

import (
	"fmt"

	"github.com/alexanderramin/studypal/internal/domain"
)

type PhraseCategory string

const (
	CategoryGreetings               PhraseCategory = "greetings"
	CategoryTaskReminders           PhraseCategory = "taskReminders"
	CategoryPraise                  PhraseCategory = "praise"
	CategoryCorrections             PhraseCategory = "corrections"
	CategoryMotivationalQuotes      PhraseCategory = "motivationalQuotes"
	CategoryEndOfDayMessages        PhraseCategory = "endOfDayMessages"
	CategoryTaskCompletionResponses PhraseCategory = "taskCompletionResponses"
	CategoryProcrastination         PhraseCategory = "procrastinationResponses"
)

// Categories lists every phrase category in a stable order.
var Categories = []PhraseCategory{
	CategoryGreetings,
	CategoryTaskReminders,
	CategoryPraise,
	CategoryCorrections,
	CategoryMotivationalQuotes,
	CategoryEndOfDayMessages,
	CategoryTaskCompletionResponses,
	CategoryProcrastination,
}

// TaskPlaceholder is replaced with the task name by the responder.
const TaskPlaceholder = "{task}"

// PhraseBank holds the candidate phrases of one fierceness level.
type PhraseBank struct {
	Greetings                []string
	TaskReminders            []string
	Praise                   []string
	Corrections              []string
	MotivationalQuotes       []string
	EndOfDayMessages         []string
	TaskCompletionResponses  []string
	ProcrastinationResponses []string
}

// Get returns the candidates for a category, or nil for an unknown one.
func (b PhraseBank) Get(c PhraseCategory) []string {
	switch c {
	case CategoryGreetings:
		return b.Greetings
	case CategoryTaskReminders:
		return b.TaskReminders
	case CategoryPraise:
		return b.Praise
	case CategoryCorrections:
		return b.Corrections
	case CategoryMotivationalQuotes:
		return b.MotivationalQuotes
	case CategoryEndOfDayMessages:
		return b.EndOfDayMessages
	case CategoryTaskCompletionResponses:
		return b.TaskCompletionResponses
	case CategoryProcrastination:
		return b.ProcrastinationResponses
	default:
		return nil
	}
}

var phraseTable = [domain.MaxLevel + 1]PhraseBank{
	// 0
	{
		Greetings: []string{
			"Hi sweetie! I'm so happy to see you!",
			"Hello, sunshine! Let's have a lovely day together!",
			"Welcome back, my favorite student!",
		},
		TaskReminders: []string{
			"Just a gentle reminder about {task}, whenever you're ready!",
			"No rush at all, but {task} is waiting for you!",
		},
		Praise: []string{
			"You're doing amazing, I'm so proud of you!",
			"Look at you go! That's awesome!",
		},
		Corrections: []string{
			"That's okay, sweetie! Let's try again together!",
			"Mistakes are just little lessons, you're doing great!",
		},
		MotivationalQuotes: []string{
			"Every small step is a step forward!",
			"Believe in yourself, because I believe in you!",
		},
		EndOfDayMessages: []string{
			"You did so well today! Rest up, sweetie!",
			"What a lovely day of learning! Sweet dreams!",
		},
		TaskCompletionResponses: []string{
			"Yay, you finished {task}! I'm so proud!",
			"{task} is done! You're a superstar!",
		},
		ProcrastinationResponses: []string{
			"It's okay to feel stuck! Let's start {task} with just five minutes!",
			"How about a tiny step on {task}? I can help!",
		},
	},
	// 1
	{
		Greetings: []string{
			"Hello there! Ready to learn something new?",
			"Hi! It's so nice to see you today!",
		},
		TaskReminders: []string{
			"A friendly reminder that {task} is coming up!",
			"Whenever you have a moment, {task} could use some attention!",
		},
		Praise: []string{
			"Wonderful work! Keep it up!",
			"That was great, well done!",
		},
		Corrections: []string{
			"Not quite, but you're close! Let's look at it again!",
			"That's alright! I can walk through it with you!",
		},
		MotivationalQuotes: []string{
			"Progress, not perfection!",
			"You are capable of more than you know!",
		},
		EndOfDayMessages: []string{
			"Nice work today! Get some good rest!",
			"Another day of learning done! Be proud of yourself!",
		},
		TaskCompletionResponses: []string{
			"Well done on finishing {task}!",
			"{task} complete! That's wonderful!",
		},
		ProcrastinationResponses: []string{
			"Feeling stuck on {task}? Let's break it into smaller pieces!",
			"Starting is the hardest part. I can help you begin {task}!",
		},
	},
	// 2
	{
		Greetings: []string{
			"Hey! Good to see you!",
			"Hey there! Let's make today count!",
		},
		TaskReminders: []string{
			"Hey, don't forget about {task}!",
			"Heads up, {task} is on the list!",
		},
		Praise: []string{
			"Nice one! That's awesome!",
			"Great job, you nailed it!",
		},
		Corrections: []string{
			"Oops, not quite! Let's fix it!",
			"Close! Give it another shot!",
		},
		MotivationalQuotes: []string{
			"You've got this!",
			"One task at a time, you'll get there!",
		},
		EndOfDayMessages: []string{
			"Solid day! Catch you tomorrow!",
			"That's a wrap for today! Nice work!",
		},
		TaskCompletionResponses: []string{
			"Boom, {task} done!",
			"{task} checked off! Great stuff!",
		},
		ProcrastinationResponses: []string{
			"Come on, let's knock out {task} together!",
			"{task} won't do itself, but I can keep you company!",
		},
	},
	// 3
	{
		Greetings: []string{
			"Welcome back! Let's set some goals for today!",
			"Good to have you here! Ready to get to work?",
		},
		TaskReminders: []string{
			"Reminder: {task} needs your focus soon!",
			"Let's plan some time for {task}!",
		},
		Praise: []string{
			"Great effort! Your consistency is paying off!",
			"Good work! You're building strong habits!",
		},
		Corrections: []string{
			"That didn't work out, so let's adjust the plan!",
			"Let's review what went wrong and try again!",
		},
		MotivationalQuotes: []string{
			"Discipline is choosing what you want most over what you want now!",
			"Small daily improvements lead to big results!",
		},
		EndOfDayMessages: []string{
			"Good session today! Let's keep the momentum tomorrow!",
			"Day complete! Review your wins before bed!",
		},
		TaskCompletionResponses: []string{
			"{task} finished! That's the kind of progress we want!",
			"Great, {task} is done! On to the next goal!",
		},
		ProcrastinationResponses: []string{
			"Let's set a 15-minute timer and start {task}!",
			"You should tackle {task} before it grows bigger!",
		},
	},
	// 4
	{
		Greetings: []string{
			"Hello. Let's review today's priorities!",
			"Good to see you. There's work to do!",
		},
		TaskReminders: []string{
			"{task} is due soon. Plan accordingly!",
			"Don't lose track of {task}!",
		},
		Praise: []string{
			"Good job. That's solid work!",
			"Great, that meets the standard!",
		},
		Corrections: []string{
			"That's not right. Check your work again!",
			"You missed something. Let's go through it!",
		},
		MotivationalQuotes: []string{
			"Results come from steady effort!",
			"Success is the sum of small efforts, repeated daily!",
		},
		EndOfDayMessages: []string{
			"Day's done. Review what's left for tomorrow!",
			"Decent progress today. Keep it consistent!",
		},
		TaskCompletionResponses: []string{
			"{task} completed. Awesome, next item!",
			"{task} is done. Keep that pace!",
		},
		ProcrastinationResponses: []string{
			"Delaying {task} won't make it easier. Start now!",
			"You should begin {task} right away!",
		},
	},
	// 5
	{
		Greetings: []string{
			"Welcome. Your task list is waiting!",
			"Let's get started. No time to waste!",
		},
		TaskReminders: []string{
			"{task} needs to be handled. Schedule it now!",
			"You should be working on {task}!",
		},
		Praise: []string{
			"Acceptable work. Keep going!",
			"Good. That's what I expect!",
		},
		Corrections: []string{
			"Wrong. Fix it and move on!",
			"That's not good enough. Redo it!",
		},
		MotivationalQuotes: []string{
			"Excuses don't get results!",
			"Hard work beats talent when talent doesn't work hard!",
		},
		EndOfDayMessages: []string{
			"Today is over. Tomorrow, do better!",
			"That's the day. Prepare for tomorrow's tasks!",
		},
		TaskCompletionResponses: []string{
			"{task} done. Next!",
			"Finished {task}. Don't slow down now!",
		},
		ProcrastinationResponses: []string{
			"Stop stalling on {task}!",
			"{task} is still waiting. That's a problem!",
		},
	},
	// 6
	{
		Greetings: []string{
			"You're here. Good. Let's get to work!",
			"Let's go. Your deadlines aren't waiting!",
		},
		TaskReminders: []string{
			"{task} is on the clock. Move!",
			"I can see {task} is still open. Fix that!",
		},
		Praise: []string{
			"Fine. Now do the next one!",
			"That's more like it!",
		},
		Corrections: []string{
			"Sloppy. Do it properly!",
			"That was careless. Again!",
		},
		MotivationalQuotes: []string{
			"Pain is temporary, a missed deadline is forever!",
			"Push harder than yesterday!",
		},
		EndOfDayMessages: []string{
			"The day is over. Did you really give it everything?",
			"Rest. Tomorrow we push harder!",
		},
		TaskCompletionResponses: []string{
			"{task} done. About time!",
			"{task} finished. Keep that fire going!",
		},
		ProcrastinationResponses: []string{
			"Procrastinating on {task}? Not on my watch!",
			"Let's stop the excuses and finish {task}!",
		},
	},
	// 7
	{
		Greetings: []string{
			"Stand up straight. We have work to do!",
			"No small talk. Let's start!",
		},
		TaskReminders: []string{
			"{task}. Now. No excuses!",
			"You should have started {task} already!",
		},
		Praise: []string{
			"Adequate. Don't get comfortable!",
			"That's the minimum. Now exceed it!",
		},
		Corrections: []string{
			"Unacceptable. Do it over!",
			"Wrong again. Focus!",
		},
		MotivationalQuotes: []string{
			"Comfort is the enemy of progress!",
			"Winners do what losers won't!",
		},
		EndOfDayMessages: []string{
			"Day's over. Tomorrow there are no excuses!",
			"You survived today. Tomorrow, dominate it!",
		},
		TaskCompletionResponses: []string{
			"{task} complete. Next target!",
			"{task} down. Don't celebrate, continue!",
		},
		ProcrastinationResponses: []string{
			"Every minute you waste on excuses, {task} gets harder!",
			"Let's be clear: {task} gets done today!",
		},
	},
	// 8
	{
		Greetings: []string{
			"ATTENTION! Report for duty!",
			"On your feet, recruit! Let's move!",
		},
		TaskReminders: []string{
			"{task} IS YOUR MISSION!",
			"You should be ON {task} RIGHT NOW!",
		},
		Praise: []string{
			"Satisfactory, recruit. Don't let it go to your head!",
			"Mission accomplished. Next one!",
		},
		Corrections: []string{
			"WRONG! Drop everything and fix it!",
			"Is that your best? DO IT AGAIN!",
		},
		MotivationalQuotes: []string{
			"Pain is weakness leaving the body!",
			"There is no try, only DO!",
		},
		EndOfDayMessages: []string{
			"Dismissed. Be ready at dawn!",
			"Day complete, soldier. Tomorrow we march again!",
		},
		TaskCompletionResponses: []string{
			"{task} ELIMINATED! Next target!",
			"{task} conquered. Stay sharp!",
		},
		ProcrastinationResponses: []string{
			"Procrastination is DESERTION! Get on {task}!",
			"I can hear you stalling! {task}, NOW!",
		},
	},
	// 9
	{
		Greetings: []string{
			"Your commander has arrived. KNEEL before your tasks!",
			"The empire of productivity awaits your service!",
		},
		TaskReminders: []string{
			"By royal decree, {task} shall be completed!",
			"{task} has been ordered by the throne!",
		},
		Praise: []string{
			"The throne acknowledges your service!",
			"You have pleased the empire. For now!",
		},
		Corrections: []string{
			"FAILURE IS NOT PERMITTED IN MY EMPIRE!",
			"You dare disappoint your commander? Correct it!",
		},
		MotivationalQuotes: []string{
			"Conquer your tasks or be conquered by them!",
			"Legends are forged in deadlines!",
		},
		EndOfDayMessages: []string{
			"The day's conquest ends. Tomorrow, total victory!",
			"Rest, warrior. The empire needs you sharp tomorrow!",
		},
		TaskCompletionResponses: []string{
			"{task} has been CONQUERED! Glory to you!",
			"Victory over {task}! The empire rejoices!",
		},
		ProcrastinationResponses: []string{
			"You should know delay is TREASON! Attack {task}!",
			"The throne does not tolerate idleness! {task}, at once!",
		},
	},
}

// Phrases returns the phrase bank for a fierceness level, clamped to 0..9.
func Phrases(fierceness int) PhraseBank {
	return phraseTable[domain.ClampLevel(fierceness)]
}

// Validate checks that every category of every level has at least one phrase.
func Validate() error {
	for level, bank := range phraseTable {
		for _, c := range Categories {
			if len(bank.Get(c)) == 0 {
				return fmt.Errorf("phrase bank level %d: category %s is empty", level, c)
			}
		}
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
