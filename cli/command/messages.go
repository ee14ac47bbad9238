package command

const deployFailedSummary = "%d of %d project%s failed to deploy:"
const errorLogNotice = "Full error details were written to %s."
const errorLogWriteFailedNotice = "Could not write error log: %s"
