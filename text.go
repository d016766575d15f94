package main

// Copy used by the server itself rather than the content files.
var (
	ContactSubject = `Portfolio Contact: %s`

	ContactBody = `
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`

	ContactSuccess = `Thank you for your message! I'll get back to you soon.`

	ContactFailure = `Sorry, there was an error sending your message. Please try again later.`

	UploadNotPDF = `Only PDF files are supported.`

	UploadEmpty = `Uploaded file is empty.`
)
